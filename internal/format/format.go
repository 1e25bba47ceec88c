// Package format turns raw market numbers into display strings.
package format

import "strconv"

// fixed2 renders v with exactly two decimals. Negative zero prints as "0.00".
func fixed2(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Magnitude abbreviates large values: 1500 -> "1.50K", 2.5e9 -> "2.50B".
// Values below one thousand keep two decimals and no suffix.
func Magnitude(n float64) string {
	switch {
	case n >= 1e9:
		return fixed2(n/1e9) + "B"
	case n >= 1e6:
		return fixed2(n/1e6) + "M"
	case n >= 1e3:
		return fixed2(n/1e3) + "K"
	default:
		return fixed2(n)
	}
}

// Currency renders n as dollars with two decimals, keeping the sign.
func Currency(n float64) string {
	return "$" + fixed2(n)
}

// Percent renders n with two decimals and a trailing percent sign.
func Percent(n float64) string {
	return fixed2(n) + "%"
}

// MoneyMagnitude is Magnitude with a dollar prefix.
func MoneyMagnitude(n float64) string {
	return "$" + Magnitude(n)
}
