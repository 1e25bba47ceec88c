// Package view holds the widget's two faces: a page state served over HTTP
// and a styled terminal printer.
package view

import (
	"sync"

	"quotelookup/internal/chart"
	"quotelookup/internal/present"
)

// Snapshot is the visible content of the page. At most one of Stock and
// Crypto is set, and Chart is only set alongside one of them.
type Snapshot struct {
	Error  string                 `json:"error,omitempty"`
	Stock  *present.StockDisplay  `json:"stock,omitempty"`
	Crypto *present.CryptoDisplay `json:"crypto,omitempty"`
	Chart  chart.Handle           `json:"chart,omitempty"`
}

// Page is a widget.View that records what is shown so that HTTP handlers
// can render it later.
type Page struct {
	mu sync.RWMutex
	s  Snapshot
}

func NewPage() *Page { return &Page{} }

func (p *Page) ClearError() {
	p.mu.Lock()
	p.s.Error = ""
	p.mu.Unlock()
}

func (p *Page) HideAll() {
	p.mu.Lock()
	p.s.Stock, p.s.Crypto, p.s.Chart = nil, nil, ""
	p.mu.Unlock()
}

func (p *Page) ShowError(msg string) {
	p.mu.Lock()
	p.s.Error = msg
	p.mu.Unlock()
}

func (p *Page) ShowStock(d present.StockDisplay) {
	p.mu.Lock()
	p.s.Stock = &d
	p.mu.Unlock()
}

func (p *Page) ShowCrypto(d present.CryptoDisplay) {
	p.mu.Lock()
	p.s.Crypto = &d
	p.mu.Unlock()
}

func (p *Page) ShowChart(h chart.Handle) {
	p.mu.Lock()
	p.s.Chart = h
	p.mu.Unlock()
}

// Snapshot returns a copy of the current content.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := p.s
	if s.Stock != nil {
		d := *s.Stock
		s.Stock = &d
	}
	if s.Crypto != nil {
		d := *s.Crypto
		s.Crypto = &d
	}
	return s
}
