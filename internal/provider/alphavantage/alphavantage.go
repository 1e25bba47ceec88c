// Package alphavantage adapts the Alpha Vantage GLOBAL_QUOTE and
// TIME_SERIES_DAILY endpoints to provider.StockProvider.
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"quotelookup/internal/classify"
	"quotelookup/internal/provider"
)

const (
	DefaultBaseURL = "https://www.alphavantage.co"
	// The free tier allows one request per second; 1.2s leaves headroom.
	DefaultMinCallInterval = 1200 * time.Millisecond
	historyDays            = 7
)

// Config configures the Alpha Vantage adapter. An empty BaseURL selects
// DefaultBaseURL.
type Config struct {
	Name    string
	APIKey  string
	BaseURL string
	// MinCallInterval is the spacing required between calls. Zero selects
	// DefaultMinCallInterval; negative disables spacing.
	MinCallInterval time.Duration
}

// Provider implements provider.StockProvider against the Alpha Vantage
// GLOBAL_QUOTE and TIME_SERIES_DAILY functions.
type Provider struct {
	cfg Config
	rc  *resty.Client
}

// New builds the adapter on rc, whose base URL is replaced by cfg.BaseURL.
func New(cfg Config, rc *resty.Client) *Provider {
	if cfg.Name == "" {
		cfg.Name = "AlphaVantage"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MinCallInterval == 0 {
		cfg.MinCallInterval = DefaultMinCallInterval
	}
	if rc == nil {
		rc = resty.New()
	}
	rc.SetBaseURL(cfg.BaseURL)
	return &Provider{cfg: cfg, rc: rc}
}

func (p *Provider) Name() string { return p.cfg.Name }

func (p *Provider) MinCallInterval() time.Duration {
	if p.cfg.MinCallInterval < 0 {
		return 0
	}
	return p.cfg.MinCallInterval
}

// signals are the advisory fields Alpha Vantage returns with HTTP 200.
type signals struct {
	Note         string `json:"Note"`
	Information  string `json:"Information"`
	ErrorMessage string `json:"Error Message"`
}

type globalQuote struct {
	signals
	Quote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		Volume        string `json:"06. volume"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
}

type dailySeries struct {
	signals
	Series map[string]struct {
		Close string `json:"4. close"`
	} `json:"Time Series (Daily)"`
}

func (p *Provider) query(ctx context.Context, function, symbol string, out any) error {
	resp, err := p.rc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": function,
			"symbol":   symbol,
			"apikey":   p.cfg.APIKey,
		}).
		Get("/query")
	if err != nil {
		return fmt.Errorf("%s %s: %w", function, symbol, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%s %s -> %d", function, symbol, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", function, err)
	}
	return nil
}

// FetchQuote returns the latest quote for symbol. A Note or Information
// field is reported as rate limiting; an Error Message or an empty quote
// as an unknown symbol.
func (p *Provider) FetchQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	var gq globalQuote
	if err := p.query(ctx, "GLOBAL_QUOTE", symbol, &gq); err != nil {
		return provider.Quote{}, provider.Network(provider.MsgStockNetwork, err)
	}
	if gq.Note != "" || gq.Information != "" {
		return provider.Quote{}, provider.RateLimited(provider.MsgRateLimited, errors.New(gq.Note+gq.Information))
	}
	if gq.ErrorMessage != "" || gq.Quote.Symbol == "" {
		return provider.Quote{}, provider.NotFound(provider.MsgStockNotFound)
	}

	q := provider.Quote{Kind: classify.Stock, Symbol: gq.Quote.Symbol, Source: p.cfg.Name, ReceivedAt: time.Now().UTC()}
	var err error
	if q.Price, err = provider.ParseNumber(gq.Quote.Price); err != nil {
		return provider.Quote{}, provider.Network(provider.MsgStockNetwork, err)
	}
	if q.Change, err = provider.ParseNumber(gq.Quote.Change); err != nil {
		return provider.Quote{}, provider.Network(provider.MsgStockNetwork, err)
	}
	if q.ChangePercent, err = provider.ParseNumber(gq.Quote.ChangePercent); err != nil {
		return provider.Quote{}, provider.Network(provider.MsgStockNetwork, err)
	}
	if q.Volume, err = provider.ParseNumber(gq.Quote.Volume); err != nil {
		return provider.Quote{}, provider.Network(provider.MsgStockNetwork, err)
	}
	return q, nil
}

// FetchHistory returns the last seven daily closes, oldest first.
func (p *Provider) FetchHistory(ctx context.Context, symbol string) ([]provider.HistoryPoint, error) {
	var ds dailySeries
	if err := p.query(ctx, "TIME_SERIES_DAILY", symbol, &ds); err != nil {
		return nil, provider.Network(provider.MsgHistoryNetwork, err)
	}
	switch {
	case ds.Note != "":
		return nil, provider.RateLimited(provider.MsgRateLimited, errors.New(ds.Note))
	case ds.ErrorMessage != "":
		return nil, fmt.Errorf("%w: %s", provider.ErrChartUnavailable, ds.ErrorMessage)
	case ds.Information != "":
		return nil, provider.RateLimited(provider.MsgRateLimited, errors.New(ds.Information))
	case len(ds.Series) == 0:
		return nil, fmt.Errorf("%w: no time series data in response", provider.ErrChartUnavailable)
	}

	dates := make([]string, 0, len(ds.Series))
	for d := range ds.Series {
		dates = append(dates, d)
	}
	// ISO dates sort lexically; newest first
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	newest := make([]provider.HistoryPoint, 0, historyDays)
	for _, d := range dates {
		if len(newest) == historyDays {
			break
		}
		ts, err := time.Parse(time.DateOnly, strings.TrimSpace(d))
		if err != nil {
			continue
		}
		closePrice, err := provider.ParseNumber(ds.Series[d].Close)
		if err != nil {
			continue
		}
		newest = append(newest, provider.HistoryPoint{Time: ts, Close: closePrice})
	}
	return provider.Chronological(newest, historyDays), nil
}
