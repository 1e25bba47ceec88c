// Package stock drives any provider.StockProvider through one quote-then-
// history lookup while honouring the provider's call spacing.
package stock

import (
	"context"
	"time"

	"quotelookup/internal/logging"
	"quotelookup/internal/provider"
	"quotelookup/internal/provider/ratelimit"
)

// Client performs lookups against a single stock provider.
type Client struct {
	p       provider.StockProvider
	limiter *ratelimit.Limiter
	log     *logging.Logger
}

// New wraps p. policy may further restrict the provider; its MinInterval
// is raised to p.MinCallInterval() when the provider demands more.
func New(p provider.StockProvider, policy ratelimit.Policy, log *logging.Logger) *Client {
	if need := p.MinCallInterval(); need > policy.MinInterval {
		policy.MinInterval = need
	}
	if log == nil {
		log = logging.NewSilent()
	}
	return &Client{p: p, limiter: ratelimit.New(policy), log: log.Component(p.Name())}
}

// Provider returns the wrapped provider's name.
func (c *Client) Provider() string { return c.p.Name() }

// Lookup fetches the quote for symbol, then its daily history. A failed
// quote is returned as an error; a failed history only drops the chart.
func (c *Client) Lookup(ctx context.Context, symbol string) (provider.Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return provider.Result{}, waitErr(ctx, err)
	}
	q, err := c.p.FetchQuote(ctx, symbol)
	if err != nil {
		return provider.Result{}, err
	}
	if q.ReceivedAt.IsZero() {
		q.ReceivedAt = time.Now().UTC()
	}
	res := provider.Result{Quote: q}

	if err := c.limiter.Wait(ctx); err != nil {
		c.log.Warn().Err(waitErr(ctx, err)).Str("symbol", symbol).Msg("history skipped while waiting for rate limit")
		return res, nil
	}
	history, err := c.p.FetchHistory(ctx, symbol)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg(provider.ErrChartUnavailable.Error())
		return res, nil
	}
	if len(history) > 0 {
		res.History = history
	}
	return res, nil
}

// waitErr classifies a failed limiter wait. The limiter refuses at once when
// the next token would arrive after ctx's deadline, which is throttling;
// only a context that is already done counts as a network failure.
func waitErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return provider.Network(provider.MsgStockNetwork, err)
	}
	return provider.RateLimited(provider.MsgRateLimited, err)
}
