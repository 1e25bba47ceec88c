package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quotelookup/internal/chart"
	"quotelookup/internal/present"
)

var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Width(12)

	upStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// Terminal is a widget.View that prints each shown section to W. Hiding is
// a no-op because printed output cannot be taken back.
type Terminal struct {
	W io.Writer
	// ChartFile resolves a chart handle to something printable, typically
	// the PNG path. Nil or an empty result prints the bare handle.
	ChartFile func(chart.Handle) string
}

func (t *Terminal) ClearError() {}

func (t *Terminal) HideAll() {}

func (t *Terminal) ShowError(msg string) {
	fmt.Fprintln(t.W, errorStyle.Render("✗ "+msg))
}

func (t *Terminal) ShowStock(d present.StockDisplay) {
	t.panel(d.Symbol, [][2]string{
		{"Price", d.Price},
		{"Change", signed(d.Change)},
		{"Change %", signed(d.ChangePercent)},
		{"Volume", d.Volume},
	})
}

func (t *Terminal) ShowCrypto(d present.CryptoDisplay) {
	t.panel(d.Name, [][2]string{
		{"Price", d.Price},
		{"24h", signed(d.Change)},
		{"Market cap", d.MarketCap},
		{"Volume", d.Volume},
	})
}

func (t *Terminal) ShowChart(h chart.Handle) {
	ref := string(h)
	if t.ChartFile != nil {
		if f := t.ChartFile(h); f != "" {
			ref = f
		}
	}
	fmt.Fprintln(t.W, labelStyle.Render("7d chart")+ref)
}

func (t *Terminal) panel(title string, rows [][2]string) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, r := range rows {
		b.WriteString("\n" + labelStyle.Render(r[0]) + r[1])
	}
	fmt.Fprintln(t.W, panelStyle.Render(b.String()))
}

func signed(f present.Field) string {
	if f.Positive {
		return upStyle.Render("▲ " + f.Text)
	}
	return downStyle.Render("▼ " + f.Text)
}
