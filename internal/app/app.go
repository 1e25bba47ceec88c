// Package app assembles the widget's collaborators from configuration.
package app

import (
	"fmt"
	"time"

	"quotelookup/internal/chart"
	"quotelookup/internal/config"
	"quotelookup/internal/httpx"
	"quotelookup/internal/logging"
	"quotelookup/internal/provider"
	"quotelookup/internal/provider/alphavantage"
	"quotelookup/internal/provider/coingecko"
	"quotelookup/internal/provider/ratelimit"
	"quotelookup/internal/provider/stock"
	"quotelookup/internal/provider/twelvedata"
	"quotelookup/internal/provider/yahoo"
	"quotelookup/internal/widget"
)

// App holds the long-lived pieces shared by every controller.
type App struct {
	Config config.Config
	Log    *logging.Logger
	HTTP   *httpx.Client
	Crypto *coingecko.Client
	Stock  *stock.Client
	Charts *chart.Renderer
}

func New(cfg config.Config, log *logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewSilent()
	}
	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	sp, err := NewStockProvider(cfg, httpClient)
	if err != nil {
		return nil, err
	}
	sel, _ := cfg.Selected()
	stockClient := stock.New(sp, ratelimit.Policy{
		MaxRequestsPerMinute: sel.MaxRequestsPerMinute,
		Burst:                sel.Burst,
	}, log)

	crypto := coingecko.NewClient(cfg.CoinGecko.APIKey,
		coingecko.WithBaseURL(cfg.CoinGecko.Endpoint),
		coingecko.WithHTTPClient(httpClient),
		coingecko.WithLogger(log.Component("coingecko")),
	)

	log.Info().
		Str("stock_provider", sp.Name()).
		Dur("min_call_interval", sp.MinCallInterval()).
		Int("max_rpm", sel.MaxRequestsPerMinute).
		Msg("providers configured")

	return &App{
		Config: cfg,
		Log:    log,
		HTTP:   httpClient,
		Crypto: crypto,
		Stock:  stockClient,
		Charts: chart.New(chart.Options{Width: cfg.Chart.Width, Height: cfg.Chart.Height, Dir: cfg.Chart.Dir}, log),
	}, nil
}

// NewStockProvider builds the adapter named by cfg.Stock.Provider.
func NewStockProvider(cfg config.Config, httpClient *httpx.Client) (provider.StockProvider, error) {
	switch cfg.Stock.Provider {
	case config.ProviderAlphaVantage:
		p := cfg.AlphaVantage
		return alphavantage.New(alphavantage.Config{
			APIKey:          p.APIKey,
			BaseURL:         p.Endpoint,
			MinCallInterval: p.MinInterval(),
		}, httpClient.Resty(p.Endpoint)), nil
	case config.ProviderTwelveData:
		p := cfg.TwelveData
		return twelvedata.New(twelvedata.Config{
			APIKey:          p.APIKey,
			BaseURL:         p.Endpoint,
			MinCallInterval: p.MinInterval(),
		}, httpClient.Resty(p.Endpoint)), nil
	case config.ProviderYahoo:
		return yahoo.New(yahoo.Config{MinCallInterval: cfg.Yahoo.MinInterval()}), nil
	default:
		return nil, fmt.Errorf("unknown stock provider %q", cfg.Stock.Provider)
	}
}

// Controller returns a controller drawing on view. Each controller owns its
// own chart handle but shares the renderer and the provider clients.
func (a *App) Controller(view widget.View) *widget.Controller {
	return widget.New(a.Crypto, a.Stock, a.Charts, view, a.Log)
}
