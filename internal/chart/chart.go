// Package chart renders price histories to PNG line charts and keeps the
// rendered images addressable by handle until they are disposed.
package chart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"quotelookup/internal/logging"
	"quotelookup/internal/present"
	"quotelookup/internal/provider"
)

// Handle identifies one rendered chart.
type Handle string

const (
	DefaultWidth  = 640
	DefaultHeight = 320
)

// Options configures a Renderer. When Dir is set, every image is also written
// to <Dir>/<handle>.png and removed again on Dispose.
type Options struct {
	Width  int
	Height int
	Dir    string
}

// Renderer is safe for concurrent use.
type Renderer struct {
	opts Options
	log  *logging.Logger

	mu     sync.RWMutex
	images map[Handle][]byte
}

func New(opts Options, log *logging.Logger) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	return &Renderer{opts: opts, log: log.Component("chart"), images: map[Handle][]byte{}}
}

// Render draws in as a single line series. Failures wrap
// provider.ErrChartUnavailable.
func (r *Renderer) Render(in present.ChartInput) (Handle, error) {
	if len(in.Values) < 2 || len(in.Times) != len(in.Values) {
		return "", fmt.Errorf("%w: need at least 2 points, got %d", provider.ErrChartUnavailable, len(in.Values))
	}

	series := gochart.TimeSeries{
		Name: in.Label,
		Style: gochart.Style{
			StrokeColor: drawing.ColorFromHex("4bc0c0"),
			StrokeWidth: 2,
			FillColor:   drawing.ColorFromHex("4bc0c0").WithAlpha(48),
		},
		XValues: in.Times,
		YValues: in.Values,
	}
	graph := gochart.Chart{
		Width:  r.opts.Width,
		Height: r.opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 30, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: gochart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return gochart.TimeFromFloat64(t).UTC().Format(present.LabelLayout)
				}
				return ""
			},
		},
		YAxis: gochart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: []gochart.Series{series},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", provider.ErrChartUnavailable, err)
	}

	h := Handle(uuid.NewString())
	if r.opts.Dir != "" {
		if err := os.WriteFile(r.path(h), buf.Bytes(), 0o644); err != nil {
			return "", fmt.Errorf("%w: write image: %v", provider.ErrChartUnavailable, err)
		}
	}

	r.mu.Lock()
	r.images[h] = buf.Bytes()
	r.mu.Unlock()
	r.log.Debug().Str("handle", string(h)).Int("points", len(in.Values)).Msg("chart rendered")
	return h, nil
}

// Dispose releases h. Unknown or already disposed handles are ignored.
func (r *Renderer) Dispose(h Handle) {
	r.mu.Lock()
	_, ok := r.images[h]
	delete(r.images, h)
	r.mu.Unlock()
	if !ok {
		return
	}
	if r.opts.Dir != "" {
		if err := os.Remove(r.path(h)); err != nil && !os.IsNotExist(err) {
			r.log.Warn().Err(err).Str("handle", string(h)).Msg("remove chart image")
		}
	}
	r.log.Debug().Str("handle", string(h)).Msg("chart disposed")
}

// Get returns the PNG bytes for h.
func (r *Renderer) Get(h Handle) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.images[h]
	return b, ok
}

// Len reports how many charts are live.
func (r *Renderer) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.images)
}

// File returns where h was written, or "" when images are kept in memory only.
func (r *Renderer) File(h Handle) string {
	if r.opts.Dir == "" {
		return ""
	}
	return r.path(h)
}

func (r *Renderer) path(h Handle) string {
	return filepath.Join(r.opts.Dir, string(h)+".png")
}
