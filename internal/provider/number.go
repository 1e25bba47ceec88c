package provider

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber reads a numeric string as sent by quote APIs ("189.8400",
// "0.6543%", " 12 "). An empty string is zero.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	f, _ := d.Float64()
	return f, nil
}
