// Package widget drives one lookup from raw query to rendered result.
package widget

import (
	"context"

	"quotelookup/internal/chart"
	"quotelookup/internal/present"
	"quotelookup/internal/provider"
)

// Lookup fetches a quote and, when available, its recent history.
//
//go:generate mockgen -package=widget_test -destination=mock_widget_test.go -source=widget.go
type Lookup interface {
	Lookup(ctx context.Context, query string) (provider.Result, error)
}

// Charts renders chart inputs to handles and releases them.
type Charts interface {
	Render(in present.ChartInput) (chart.Handle, error)
	Dispose(h chart.Handle)
}

// View is what the controller draws on. Calls arrive with the controller's
// lock held, so implementations must not call back into the controller.
type View interface {
	ClearError()
	HideAll()
	ShowError(msg string)
	ShowStock(d present.StockDisplay)
	ShowCrypto(d present.CryptoDisplay)
	ShowChart(h chart.Handle)
}
