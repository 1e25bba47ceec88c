package main

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"quotelookup/internal/chart"
	"quotelookup/internal/logging"
	"quotelookup/internal/view"
	"quotelookup/internal/widget"
)

type submitter interface {
	Submit(ctx context.Context, raw string) widget.State
	State() widget.State
}

type chartStore interface {
	Get(h chart.Handle) ([]byte, bool)
}

type handler struct {
	ctrl    submitter
	page    *view.Page
	charts  chartStore
	timeout time.Duration
	log     *logging.Logger
}

type lookupResponse struct {
	Query    string       `json:"query"`
	State    widget.State `json:"state"`
	ChartURL string       `json:"chart_url,omitempty"`
	view.Snapshot
}

func (h *handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /{$}", h.handlePage)
	mux.HandleFunc("GET /api/lookup", h.handleLookup)
	mux.HandleFunc("GET /chart/{file}", h.handleChart)
	return withCORS(withGzip(recoverPanic(h.log, logRequests(h.log, mux))))
}

// submit runs the query carried by r, if any. A present but empty q is
// still a submission so the blank-query message is shown.
func (h *handler) submit(r *http.Request) (string, widget.State) {
	if !r.URL.Query().Has("q") {
		return "", h.ctrl.State()
	}
	q := r.URL.Query().Get("q")
	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	return q, h.ctrl.Submit(ctx, q)
}

func (h *handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("q") {
		http.Error(w, "missing q query param", http.StatusBadRequest)
		return
	}
	q, state := h.submit(r)
	resp := lookupResponse{Query: q, State: state, Snapshot: h.page.Snapshot()}
	if resp.Chart != "" {
		resp.ChartURL = chartURL(resp.Chart)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request) {
	q, state := h.submit(r)
	data := struct {
		Query string
		State widget.State
		view.Snapshot
	}{q, state, h.page.Snapshot()}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		h.log.Error().Err(err).Msg("render page")
	}
}

func (h *handler) handleChart(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	id, ok := strings.CutSuffix(file, ".png")
	if !ok {
		http.NotFound(w, r)
		return
	}
	img, ok := h.charts.Get(chart.Handle(id))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(img)
}

func chartURL(h chart.Handle) string { return "/chart/" + string(h) + ".png" }

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"chartURL": chartURL,
	"trend": func(positive bool) string {
		if positive {
			return "up"
		}
		return "down"
	},
}).Parse(pageHTML))

const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Market Lookup</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 42rem; margin: 2rem auto; }
.up { color: #10b981; } .down { color: #ef4444; }
.error { color: #ef4444; font-weight: bold; }
dl { display: grid; grid-template-columns: 8rem 1fr; }
</style>
</head>
<body>
<form method="get" action="/">
  <input name="q" value="{{.Query}}" placeholder="AAPL, TSLA, bitcoin, eth..." autofocus>
  <button type="submit">Search</button>
</form>
{{with .Error}}<p class="error" id="error">{{.}}</p>{{end}}
{{with .Stock}}
<section id="stock">
  <h2>{{.Symbol}}</h2>
  <dl>
    <dt>Price</dt><dd>{{.Price}}</dd>
    <dt>Change</dt><dd class="{{trend .Change.Positive}}">{{.Change.Text}}</dd>
    <dt>Change %</dt><dd class="{{trend .ChangePercent.Positive}}">{{.ChangePercent.Text}}</dd>
    <dt>Volume</dt><dd>{{.Volume}}</dd>
  </dl>
</section>
{{end}}
{{with .Crypto}}
<section id="crypto">
  <h2>{{.Name}}</h2>
  <dl>
    <dt>Price</dt><dd>{{.Price}}</dd>
    <dt>24h</dt><dd class="{{trend .Change.Positive}}">{{.Change.Text}}</dd>
    <dt>Market cap</dt><dd>{{.MarketCap}}</dd>
    <dt>Volume</dt><dd>{{.Volume}}</dd>
  </dl>
</section>
{{end}}
{{with .Chart}}<section id="chart"><img alt="7 day price chart" src="{{chartURL .}}"></section>{{end}}
</body>
</html>
`
