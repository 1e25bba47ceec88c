// Package twelvedata adapts the Twelve Data quote and time_series endpoints
// to provider.StockProvider.
package twelvedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"quotelookup/internal/classify"
	"quotelookup/internal/provider"
)

const (
	DefaultBaseURL = "https://api.twelvedata.com"
	outputSize     = 8
	historyDays    = 7
)

// Config configures the Twelve Data adapter. An empty BaseURL selects
// DefaultBaseURL.
type Config struct {
	Name    string
	APIKey  string
	BaseURL string
	// MinCallInterval is the spacing required between calls; Twelve Data
	// meters credits per minute, so none is needed by default.
	MinCallInterval time.Duration
}

// Provider implements provider.StockProvider against the Twelve Data
// /quote and /time_series endpoints.
type Provider struct {
	cfg Config
	rc  *resty.Client
}

// New builds the adapter on rc, whose base URL is replaced by cfg.BaseURL.
func New(cfg Config, rc *resty.Client) *Provider {
	if cfg.Name == "" {
		cfg.Name = "TwelveData"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
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

// status is present on every response; "error" carries code and message.
type status struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s status) err() error {
	if s.Status != "error" {
		return nil
	}
	cause := fmt.Errorf("twelvedata %d: %s", s.Code, s.Message)
	switch s.Code {
	case http.StatusBadRequest, http.StatusNotFound:
		return provider.NotFound(provider.MsgStockNotFound)
	default:
		return provider.RateLimited(provider.MsgRateLimited, cause)
	}
}

type quoteResponse struct {
	status
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Close         string `json:"close"`
	Change        string `json:"change"`
	PercentChange string `json:"percent_change"`
	Volume        string `json:"volume"`
}

type seriesResponse struct {
	status
	Values []struct {
		Datetime string `json:"datetime"`
		Close    string `json:"close"`
	} `json:"values"`
}

func (p *Provider) get(ctx context.Context, path string, params map[string]string, out any) error {
	params["apikey"] = p.cfg.APIKey
	resp, err := p.rc.R().SetContext(ctx).SetQueryParams(params).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("GET %s -> %d", path, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// FetchQuote returns the latest quote for symbol. A status=error body with
// code 400 or 404 means the symbol is unknown; any other code is treated as
// rate limiting.
func (p *Provider) FetchQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	var qr quoteResponse
	if err := p.get(ctx, "/quote", map[string]string{"symbol": symbol}, &qr); err != nil {
		return provider.Quote{}, provider.Network(provider.MsgStockNetwork, err)
	}
	if err := qr.status.err(); err != nil {
		return provider.Quote{}, err
	}
	if qr.Symbol == "" || qr.Close == "" {
		return provider.Quote{}, provider.NotFound(provider.MsgStockNotFound)
	}

	q := provider.Quote{Kind: classify.Stock, Symbol: qr.Symbol, Source: p.cfg.Name, ReceivedAt: time.Now().UTC()}
	fields := []struct {
		dst *float64
		raw string
	}{
		{&q.Price, qr.Close},
		{&q.Change, qr.Change},
		{&q.ChangePercent, qr.PercentChange},
		{&q.Volume, qr.Volume},
	}
	for _, f := range fields {
		v, err := provider.ParseNumber(f.raw)
		if err != nil {
			return provider.Quote{}, provider.Network(provider.MsgStockNetwork, err)
		}
		*f.dst = v
	}
	return q, nil
}

// FetchHistory returns the last seven daily closes, oldest first.
func (p *Provider) FetchHistory(ctx context.Context, symbol string) ([]provider.HistoryPoint, error) {
	var sr seriesResponse
	params := map[string]string{
		"symbol":     symbol,
		"interval":   "1day",
		"outputsize": strconv.Itoa(outputSize),
	}
	if err := p.get(ctx, "/time_series", params, &sr); err != nil {
		return nil, provider.Network(provider.MsgHistoryNetwork, err)
	}
	if err := sr.status.err(); err != nil {
		return nil, err
	}
	if len(sr.Values) == 0 {
		return nil, errors.New("twelvedata: empty time series")
	}

	// values arrive newest first
	newest := make([]provider.HistoryPoint, 0, historyDays)
	for _, v := range sr.Values {
		if len(newest) == historyDays {
			break
		}
		ts, err := parseDatetime(v.Datetime)
		if err != nil {
			continue
		}
		c, err := provider.ParseNumber(v.Close)
		if err != nil {
			continue
		}
		newest = append(newest, provider.HistoryPoint{Time: ts, Close: c})
	}
	return provider.Chronological(newest, historyDays), nil
}

func parseDatetime(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateTime, s)
}
