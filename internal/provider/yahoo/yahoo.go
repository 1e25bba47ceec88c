// Package yahoo adapts Yahoo Finance, through piquette/finance-go, to
// provider.StockProvider.
package yahoo

import (
	"context"
	"errors"
	"sort"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"quotelookup/internal/classify"
	"quotelookup/internal/provider"
)

const historyDays = 7

// lookback covers seven trading sessions across weekends and holidays.
const lookback = 14 * 24 * time.Hour

// Config configures the Yahoo adapter. Yahoo needs no key.
type Config struct {
	Name            string
	MinCallInterval time.Duration
}

// Provider calls Yahoo through finance-go. The quote and bar functions are
// fields so tests can run without network access.
type Provider struct {
	cfg      Config
	getQuote func(symbol string) (*finance.Quote, error)
	getBars  func(symbol string, start, end time.Time) ([]bar, error)
	now      func() time.Time
}

type bar struct {
	Time  time.Time
	Close float64
}

// New builds the adapter on finance-go's default backends.
func New(cfg Config) *Provider {
	if cfg.Name == "" {
		cfg.Name = "Yahoo"
	}
	return &Provider{cfg: cfg, getQuote: quote.Get, getBars: dailyBars, now: time.Now}
}

func (p *Provider) Name() string { return p.cfg.Name }

func (p *Provider) MinCallInterval() time.Duration {
	if p.cfg.MinCallInterval < 0 {
		return 0
	}
	return p.cfg.MinCallInterval
}

// FetchQuote returns the regular-market quote for symbol. ctx is only checked
// up front: finance-go has no context-aware API.
func (p *Provider) FetchQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	if err := ctx.Err(); err != nil {
		return provider.Quote{}, provider.Network(provider.MsgStockNetwork, err)
	}
	q, err := p.getQuote(symbol)
	if err != nil {
		return provider.Quote{}, provider.Network(provider.MsgStockNetwork, err)
	}
	if q == nil || q.Symbol == "" {
		return provider.Quote{}, provider.NotFound(provider.MsgStockNotFound)
	}
	return provider.Quote{
		Kind:          classify.Stock,
		Symbol:        q.Symbol,
		Price:         q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
		Volume:        float64(q.RegularMarketVolume),
		Source:        p.cfg.Name,
		ReceivedAt:    time.Now().UTC(),
	}, nil
}

// FetchHistory returns the last seven daily closes, oldest first, from a
// two-week window of daily bars.
func (p *Provider) FetchHistory(ctx context.Context, symbol string) ([]provider.HistoryPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	end := p.now().UTC()
	bars, err := p.getBars(symbol, end.Add(-lookback), end)
	if err != nil {
		return nil, provider.Network(provider.MsgHistoryNetwork, err)
	}
	if len(bars) == 0 {
		return nil, errors.New("yahoo: no daily bars")
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.After(bars[j].Time) })
	newest := make([]provider.HistoryPoint, 0, historyDays)
	for _, b := range bars {
		if len(newest) == historyDays {
			break
		}
		newest = append(newest, provider.HistoryPoint{Time: b.Time, Close: b.Close})
	}
	return provider.Chronological(newest, historyDays), nil
}

func dailyBars(symbol string, start, end time.Time) ([]bar, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)
	var out []bar
	for iter.Next() {
		b := iter.Bar()
		c, _ := b.Close.Float64()
		out = append(out, bar{Time: time.Unix(int64(b.Timestamp), 0).UTC(), Close: c})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
