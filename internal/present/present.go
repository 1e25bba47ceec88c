// Package present maps fetched quotes and histories into what the widget
// displays. Every function here is pure.
package present

import (
	"time"

	"quotelookup/internal/classify"
	"quotelookup/internal/format"
	"quotelookup/internal/provider"
)

// Field is one displayed value. Positive drives the green/red indicator and
// has no other effect.
type Field struct {
	Text     string `json:"text"`
	Positive bool   `json:"positive"`
}

// StockDisplay is the text of the stock panel.
type StockDisplay struct {
	Symbol        string `json:"symbol"`
	Price         string `json:"price"`
	Change        Field  `json:"change"`
	ChangePercent Field  `json:"change_percent"`
	Volume        string `json:"volume"`
}

// CryptoDisplay is the text of the crypto panel.
type CryptoDisplay struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Change    Field  `json:"change"`
	MarketCap string `json:"market_cap"`
	Volume    string `json:"volume"`
}

// DisplayState holds exactly one of Stock or Crypto.
type DisplayState struct {
	Kind   classify.AssetKind `json:"kind"`
	Stock  *StockDisplay      `json:"stock,omitempty"`
	Crypto *CryptoDisplay     `json:"crypto,omitempty"`
}

// ChartInput is what the chart adapter draws: one label and value per point.
// Times carries the instants behind Labels for renderers that need an axis.
type ChartInput struct {
	Label  string      `json:"label"`
	Labels []string    `json:"labels"`
	Values []float64   `json:"values"`
	Times  []time.Time `json:"-"`
}

// LabelLayout is the fixed month/day format of chart labels, in UTC.
const LabelLayout = "Jan 2"

func signed(text string, v float64) Field {
	return Field{Text: text, Positive: v >= 0}
}

// ToDisplay formats q for its panel.
func ToDisplay(q provider.Quote) DisplayState {
	if q.Kind == classify.Crypto {
		return DisplayState{Kind: classify.Crypto, Crypto: &CryptoDisplay{
			Name:      q.Symbol,
			Price:     format.Currency(q.Price),
			Change:    signed(format.Percent(q.ChangePercent), q.ChangePercent),
			MarketCap: format.MoneyMagnitude(q.MarketCap),
			Volume:    format.MoneyMagnitude(q.Volume),
		}}
	}
	return DisplayState{Kind: classify.Stock, Stock: &StockDisplay{
		Symbol:        q.Symbol,
		Price:         format.Currency(q.Price),
		Change:        signed(format.Currency(q.Change), q.Change),
		ChangePercent: signed(format.Percent(q.ChangePercent), q.ChangePercent),
		Volume:        format.Magnitude(q.Volume),
	}}
}

// ToChartSeries converts points into chart input labelled "<label> Price (USD)".
func ToChartSeries(points []provider.HistoryPoint, label string) ChartInput {
	in := ChartInput{
		Label:  label + " Price (USD)",
		Labels: make([]string, len(points)),
		Values: make([]float64, len(points)),
		Times:  make([]time.Time, len(points)),
	}
	for i, p := range points {
		t := p.Time.UTC()
		in.Labels[i] = t.Format(LabelLayout)
		in.Values[i] = p.Close
		in.Times[i] = t
	}
	return in
}
