package provider

import (
	"context"
	"time"

	"quotelookup/internal/classify"
)

// Quote is the normalized current snapshot returned by every client.
// Change is only populated for stocks; crypto providers report percent only.
type Quote struct {
	Kind          classify.AssetKind `json:"kind"`
	Symbol        string             `json:"symbol"`
	Price         float64            `json:"price"`
	Change        float64            `json:"change"`
	ChangePercent float64            `json:"change_percent"`
	MarketCap     float64            `json:"market_cap"`
	Volume        float64            `json:"volume"`
	Source        string             `json:"source"`
	ReceivedAt    time.Time          `json:"received_at"`
}

// HistoryPoint is one daily close used to draw the trend chart.
type HistoryPoint struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

// MaxHistoryPoints caps a history series.
const MaxHistoryPoints = 8

// Result is the outcome of one lookup. History is nil when the chart data
// could not be fetched; that is never an error for the caller.
type Result struct {
	Quote   Quote          `json:"quote"`
	History []HistoryPoint `json:"history,omitempty"`
}

// StockProvider is the capability set a stock data source must offer.
// MinCallInterval is the spacing the provider requires between consecutive
// calls; zero means none.
type StockProvider interface {
	Name() string
	FetchQuote(ctx context.Context, symbol string) (Quote, error)
	FetchHistory(ctx context.Context, symbol string) ([]HistoryPoint, error)
	MinCallInterval() time.Duration
}

// Chronological returns the newest n points of a newest-first series in
// oldest-first order.
func Chronological(newestFirst []HistoryPoint, n int) []HistoryPoint {
	if n > len(newestFirst) {
		n = len(newestFirst)
	}
	out := make([]HistoryPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, newestFirst[i])
	}
	return out
}
