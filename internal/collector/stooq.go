package collector

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StockBench/internal/httputil"
	"StockBench/internal/model"
)

// StooqFetcher implements Fetcher using the Stooq daily-history CSV endpoint.
type StooqFetcher struct {
	BaseURL string
	Client  *http.Client
	Retry   httputil.RetryConfig
}

// NewStooqFetcher creates a new Stooq fetcher with optional proxy support.
func NewStooqFetcher(proxyURL string, timeout time.Duration, retry httputil.RetryConfig) *StooqFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &StooqFetcher{
		BaseURL: "https://stooq.com",
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		Retry: retry,
	}
}

func (f *StooqFetcher) Name() string { return "stooq" }

// stooqIndexes maps Yahoo-style index symbols to stooq codes.
var stooqIndexes = map[string]string{
	"^GSPC": "^spx",
	"^IXIC": "^ndq",
	"^DJI":  "^dji",
}

// stooqSymbol translates a symbol into stooq notation. US equities carry a
// .us suffix; only the indexes stooq actually serves are mapped.
func stooqSymbol(symbol string) (string, error) {
	if s, ok := stooqIndexes[symbol]; ok {
		return s, nil
	}
	if strings.HasPrefix(symbol, "^") {
		return "", fmt.Errorf("index %s is not available from stooq", symbol)
	}
	return strings.ToLower(symbol) + ".us", nil
}

func (f *StooqFetcher) FetchDaily(ctx context.Context, symbol string, start, end time.Time) (model.PriceSeries, error) {
	sym, err := stooqSymbol(symbol)
	if err != nil {
		return model.PriceSeries{}, err
	}
	u := fmt.Sprintf("%s/q/d/l/?s=%s&d1=%s&d2=%s&i=d",
		f.BaseURL, url.QueryEscape(sym), start.Format("20060102"), end.Format("20060102"))

	resp, err := httputil.Do(ctx, f.Client, f.Retry, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	})
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("stooq fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.PriceSeries{}, fmt.Errorf("stooq: status %d for %s", resp.StatusCode, symbol)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // tolerate short error lines
	records, err := reader.ReadAll()
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("stooq parse csv: %w", err)
	}
	if len(records) < 2 || len(records[0]) < 5 || records[0][0] != "Date" {
		return model.PriceSeries{}, fmt.Errorf("stooq: no data returned for %s", symbol)
	}

	points := make([]model.PricePoint, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 5 {
			continue
		}
		date, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			continue
		}
		c, err := strconv.ParseFloat(rec[4], 64)
		if err != nil || c <= 0 {
			continue
		}
		points = append(points, model.PricePoint{Date: date, Close: c})
	}
	return newSeries(symbol, points)
}
