package widget

import (
	"context"
	"strings"
	"sync"

	"quotelookup/internal/chart"
	"quotelookup/internal/classify"
	"quotelookup/internal/logging"
	"quotelookup/internal/present"
	"quotelookup/internal/provider"
)

// State is what the widget currently shows.
type State int

const (
	Idle State = iota
	Busy
	ShowingStock
	ShowingCrypto
	ShowingError
	// Superseded is only ever returned by Submit: a newer submission
	// started before this one finished and its result was dropped.
	Superseded
)

var stateNames = [...]string{"idle", "busy", "stock", "crypto", "error", "superseded"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Controller owns the display state, the submission sequence and the single
// live chart handle.
type Controller struct {
	crypto Lookup
	stock  Lookup
	charts Charts
	view   View
	log    *logging.Logger

	mu     sync.Mutex
	seq    uint64
	state  State
	handle chart.Handle
}

func New(crypto, stock Lookup, charts Charts, view View, log *logging.Logger) *Controller {
	return &Controller{
		crypto: crypto,
		stock:  stock,
		charts: charts,
		view:   view,
		log:    log.Component("widget"),
	}
}

// State returns the current display state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs one lookup for raw and returns the state it left the widget in.
// Errors never escape; they become ShowingError.
func (c *Controller) Submit(ctx context.Context, raw string) State {
	query := strings.TrimSpace(raw)

	c.mu.Lock()
	c.seq++
	seq := c.seq
	if query == "" {
		c.view.HideAll()
		c.disposeChart()
		c.view.ShowError(provider.MsgEmptyQuery)
		c.state = ShowingError
		c.mu.Unlock()
		return ShowingError
	}
	c.view.ClearError()
	c.view.HideAll()
	c.disposeChart()
	c.state = Busy
	c.mu.Unlock()

	kind := classify.Classify(query)
	var (
		label string
		res   provider.Result
		err   error
	)
	if kind == classify.Crypto {
		label = classify.NormalizeCryptoID(strings.ToLower(query))
		res, err = c.crypto.Lookup(ctx, label)
	} else {
		label = strings.ToUpper(query)
		res, err = c.stock.Lookup(ctx, label)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		c.log.Debug().Uint64("seq", seq).Uint64("current", c.seq).Str("query", query).Msg("discarding stale result")
		return Superseded
	}
	if err != nil {
		c.log.Info().Err(err).Str("query", query).Str("kind", kind.String()).Msg("lookup failed")
		c.view.ShowError(provider.UserMessage(err))
		c.state = ShowingError
		return c.state
	}

	d := present.ToDisplay(res.Quote)
	if d.Crypto != nil {
		c.view.ShowCrypto(*d.Crypto)
		c.state = ShowingCrypto
	} else {
		c.view.ShowStock(*d.Stock)
		c.state = ShowingStock
	}
	if len(res.History) > 0 {
		// crypto charts carry the coin's display name, stocks their ticker
		if kind == classify.Crypto && res.Quote.Symbol != "" {
			label = res.Quote.Symbol
		}
		c.showChart(present.ToChartSeries(res.History, label))
	}
	return c.state
}

// disposeChart releases the live chart, if any. mu must be held.
func (c *Controller) disposeChart() {
	if c.handle != "" {
		c.charts.Dispose(c.handle)
		c.handle = ""
	}
}

// showChart must be called with mu held.
func (c *Controller) showChart(in present.ChartInput) {
	c.disposeChart()
	h, err := c.charts.Render(in)
	if err != nil {
		c.log.Warn().Err(err).Str("label", in.Label).Msg("chart unavailable")
		return
	}
	c.handle = h
	c.view.ShowChart(h)
}

// Close releases the live chart, if any.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposeChart()
}
