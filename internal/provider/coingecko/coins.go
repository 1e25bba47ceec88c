package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"time"

	"quotelookup/internal/classify"
	"quotelookup/internal/provider"
)

// Coin is the subset of /coins/{id} the widget displays.
type Coin struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MarketData struct {
		CurrentPrice             currencyMap `json:"current_price"`
		PriceChangePercentage24h float64     `json:"price_change_percentage_24h"`
		MarketCap                currencyMap `json:"market_cap"`
		TotalVolume              currencyMap `json:"total_volume"`
	} `json:"market_data"`
}

type currencyMap struct {
	USD float64 `json:"usd"`
}

type marketChart struct {
	Prices [][2]float64 `json:"prices"`
}

// get performs a GET for path and decodes a 200 response into out. Non-2xx
// statuses are returned as *statusError.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	query := maps.Clone(c.query)
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &statusError{code: res.StatusCode, path: path}
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

type statusError struct {
	code int
	path string
}

func (e *statusError) Error() string { return fmt.Sprintf("GET %s -> %d", e.path, e.code) }

// GetCoin fetches market data for a canonical coin id.
func (c *Client) GetCoin(ctx context.Context, id string) (Coin, error) {
	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "false")
	params.Set("market_data", "true")
	params.Set("community_data", "false")
	params.Set("developer_data", "false")

	var coin Coin
	err := c.get(ctx, "/coins/"+url.PathEscape(id), params, &coin)
	return coin, err
}

// GetMarketChart fetches daily USD prices for the last days days, in the
// order the API returns them.
func (c *Client) GetMarketChart(ctx context.Context, id string, days int) ([]provider.HistoryPoint, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("days", fmt.Sprint(days))
	params.Set("interval", "daily")

	var mc marketChart
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/market_chart", params, &mc); err != nil {
		return nil, err
	}
	prices := mc.Prices
	if len(prices) > provider.MaxHistoryPoints {
		prices = prices[len(prices)-provider.MaxHistoryPoints:]
	}
	out := make([]provider.HistoryPoint, 0, len(prices))
	for _, p := range prices {
		out = append(out, provider.HistoryPoint{
			Time:  time.UnixMilli(int64(p[0])).UTC(),
			Close: p[1],
		})
	}
	return out, nil
}

// Lookup fetches the quote and, best effort, the 7-day history for id.
func (c *Client) Lookup(ctx context.Context, id string) (provider.Result, error) {
	coin, err := c.GetCoin(ctx, id)
	if err != nil {
		return provider.Result{}, classifyErr(err)
	}
	res := provider.Result{Quote: provider.Quote{
		Kind:          classify.Crypto,
		Symbol:        coin.Name,
		Price:         coin.MarketData.CurrentPrice.USD,
		ChangePercent: coin.MarketData.PriceChangePercentage24h,
		MarketCap:     coin.MarketData.MarketCap.USD,
		Volume:        coin.MarketData.TotalVolume.USD,
		Source:        "CoinGecko",
		ReceivedAt:    time.Now().UTC(),
	}}

	history, err := c.GetMarketChart(ctx, id, 7)
	if err != nil {
		c.log.Warn().Err(err).Str("coin", id).Msg(provider.ErrChartUnavailable.Error())
		return res, nil
	}
	if len(history) > 0 {
		res.History = history
	}
	return res, nil
}

func classifyErr(err error) error {
	var se *statusError
	if errors.As(err, &se) {
		if se.code == http.StatusTooManyRequests {
			return provider.RateLimited(provider.MsgRateLimited, err)
		}
		return provider.NotFound(provider.MsgCryptoNotFound)
	}
	return provider.Network(provider.MsgCryptoNetwork, err)
}
