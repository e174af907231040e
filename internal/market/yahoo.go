// Package market serves market pulse data (NIFTY 50, SENSEX, gold, bonds)
// for the dashboard ticker, with a static fallback when the upstream feed
// is unreachable.
package market

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"
)

// YahooClient fetches quotes and history from the Yahoo Finance chart API.
type YahooClient struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string // maps friendly symbols to Yahoo tickers
}

// NewYahooClient creates a Yahoo Finance client, optionally via a proxy.
func NewYahooClient(proxyURL string) *YahooClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooClient{
		BaseURL: "https://query1.finance.yahoo.com",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SymbolMap: map[string]string{
			"NIFTY":  "^NSEI",
			"SENSEX": "^BSESN",
			"GOLD":   "GC=F",
			"USDINR": "INR=X",
		},
	}
}

func (c *YahooClient) yahooSymbol(symbol string) string {
	if mapped, ok := c.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response shape of the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (c *YahooClient) fetchChart(symbol, interval, rng string) (*yahooChart, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		c.BaseURL, url.PathEscape(c.yahooSymbol(symbol)), interval, rng)

	resp, err := c.Client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("fetch chart %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch chart %s: status %d", symbol, resp.StatusCode)
	}

	var chart yahooChart
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("decode chart %s: %w", symbol, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("fetch chart %s: %s", symbol, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("fetch chart %s: empty result", symbol)
	}
	return &chart, nil
}

// Quote returns the latest price and previous close for a symbol.
func (c *YahooClient) Quote(symbol string) (last, prevClose float64, err error) {
	chart, err := c.fetchChart(symbol, "1d", "5d")
	if err != nil {
		return 0, 0, err
	}
	meta := chart.Chart.Result[0].Meta
	if meta.RegularMarketPrice == 0 {
		return 0, 0, fmt.Errorf("quote %s: no price in response", symbol)
	}
	return meta.RegularMarketPrice, meta.ChartPreviousClose, nil
}

// HistoryPoint is one daily close.
type HistoryPoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// History returns daily closes for a symbol over a Yahoo period string
// (1d, 5d, 7d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max).
func (c *YahooClient) History(symbol, period string) ([]HistoryPoint, error) {
	chart, err := c.fetchChart(symbol, "1d", period)
	if err != nil {
		return nil, err
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("history %s: no quote data", symbol)
	}
	closes := result.Indicators.Quote[0].Close

	points := make([]HistoryPoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, HistoryPoint{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Close: roundTo(*closes[i], 2),
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("history %s: no data found", symbol)
	}
	return points, nil
}

func roundTo(v float64, places int) float64 {
	shift := 1.0
	for i := 0; i < places; i++ {
		shift *= 10
	}
	return math.Round(v*shift) / shift
}
