package stock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quotelookup/internal/classify"
	"quotelookup/internal/provider"
	"quotelookup/internal/provider/ratelimit"
)

type fakeProvider struct {
	interval   time.Duration
	quote      provider.Quote
	quoteErr   error
	history    []provider.HistoryPoint
	historyErr error

	calls []string
	times []time.Time
}

func (f *fakeProvider) Name() string                   { return "fake" }
func (f *fakeProvider) MinCallInterval() time.Duration { return f.interval }

func (f *fakeProvider) FetchQuote(_ context.Context, symbol string) (provider.Quote, error) {
	f.calls = append(f.calls, "quote:"+symbol)
	f.times = append(f.times, time.Now())
	return f.quote, f.quoteErr
}

func (f *fakeProvider) FetchHistory(_ context.Context, symbol string) ([]provider.HistoryPoint, error) {
	f.calls = append(f.calls, "history:"+symbol)
	f.times = append(f.times, time.Now())
	return f.history, f.historyErr
}

func sevenDays() []provider.HistoryPoint {
	start := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)
	out := make([]provider.HistoryPoint, 7)
	for i := range out {
		out[i] = provider.HistoryPoint{Time: start.AddDate(0, 0, i), Close: 180 + float64(i)}
	}
	return out
}

func TestLookup_QuoteThenHistory(t *testing.T) {
	p := &fakeProvider{
		quote:   provider.Quote{Kind: classify.Stock, Symbol: "AAPL", Price: 189.84},
		history: sevenDays(),
	}
	c := New(p, ratelimit.Policy{}, nil)

	res, err := c.Lookup(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, []string{"quote:AAPL", "history:AAPL"}, p.calls)
	require.Equal(t, "AAPL", res.Quote.Symbol)
	require.False(t, res.Quote.ReceivedAt.IsZero())
	require.Len(t, res.History, 7)
}

func TestLookup_SpacesCallsByProviderInterval(t *testing.T) {
	p := &fakeProvider{interval: 80 * time.Millisecond, quote: provider.Quote{Symbol: "IBM"}, history: sevenDays()}
	c := New(p, ratelimit.Policy{}, nil)

	_, err := c.Lookup(t.Context(), "IBM")
	require.NoError(t, err)
	require.Len(t, p.times, 2)
	require.GreaterOrEqual(t, p.times[1].Sub(p.times[0]), 60*time.Millisecond)
}

func TestLookup_NoSpacingWhenProviderHasNone(t *testing.T) {
	p := &fakeProvider{quote: provider.Quote{Symbol: "IBM"}, history: sevenDays()}
	c := New(p, ratelimit.Policy{}, nil)

	_, err := c.Lookup(t.Context(), "IBM")
	require.NoError(t, err)
	require.Less(t, p.times[1].Sub(p.times[0]), 50*time.Millisecond)
}

func TestLookup_QuoteErrorSkipsHistory(t *testing.T) {
	p := &fakeProvider{quoteErr: provider.RateLimited(provider.MsgRateLimited, nil)}
	c := New(p, ratelimit.Policy{}, nil)

	_, err := c.Lookup(t.Context(), "AAPL")
	require.ErrorIs(t, err, provider.ErrRateLimited)
	require.Equal(t, []string{"quote:AAPL"}, p.calls)
}

func TestLookup_HistoryErrorDegrades(t *testing.T) {
	p := &fakeProvider{
		quote:      provider.Quote{Symbol: "AAPL"},
		historyErr: provider.RateLimited(provider.MsgRateLimited, errors.New("Note")),
	}
	c := New(p, ratelimit.Policy{}, nil)

	res, err := c.Lookup(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "AAPL", res.Quote.Symbol)
	require.Nil(t, res.History)
}

func TestLookup_CanceledWhileSpacingKeepsQuote(t *testing.T) {
	p := &fakeProvider{interval: time.Hour, quote: provider.Quote{Symbol: "AAPL"}, history: sevenDays()}
	c := New(p, ratelimit.Policy{}, nil)

	ctx, cancel := context.WithTimeout(t.Context(), 30*time.Millisecond)
	defer cancel()
	res, err := c.Lookup(ctx, "AAPL")
	require.NoError(t, err)
	require.Equal(t, "AAPL", res.Quote.Symbol)
	require.Nil(t, res.History)
	require.Equal(t, []string{"quote:AAPL"}, p.calls)
}

func TestLookup_PerMinuteCapExhaustedIsRateLimited(t *testing.T) {
	p := &fakeProvider{quote: provider.Quote{Symbol: "AAPL"}, history: sevenDays()}
	c := New(p, ratelimit.Policy{MaxRequestsPerMinute: 5, Burst: 2}, nil)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()
	res, err := c.Lookup(ctx, "AAPL")
	require.NoError(t, err)
	require.Len(t, res.History, 7)

	// both tokens are spent; the next one is 12s away, past the deadline
	ctx2, cancel2 := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel2()
	start := time.Now()
	_, err = c.Lookup(ctx2, "AAPL")

	require.ErrorIs(t, err, provider.ErrRateLimited)
	require.False(t, errors.Is(err, provider.ErrNetwork))
	require.Equal(t, provider.MsgRateLimited, provider.UserMessage(err))
	require.Less(t, time.Since(start), time.Second)
	require.Len(t, p.calls, 2)
}

func TestLookup_CancelledContextIsNetwork(t *testing.T) {
	p := &fakeProvider{quote: provider.Quote{Symbol: "AAPL"}}
	c := New(p, ratelimit.Policy{MaxRequestsPerMinute: 5, Burst: 2}, nil)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := c.Lookup(ctx, "AAPL")

	require.ErrorIs(t, err, provider.ErrNetwork)
	require.Empty(t, p.calls)
}
