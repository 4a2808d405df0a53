package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"StockBench/internal/httputil"
)

var testRetry = httputil.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

func testYahooFetcher(srv *httptest.Server) *YahooFetcher {
	f := NewYahooFetcher("", 5*time.Second, testRetry)
	f.BaseURL = srv.URL
	f.Client = srv.Client()
	return f
}

const yahooPayload = `{"chart":{"result":[{"timestamp":[1609891200,1609718400,1609804800],"indicators":{"quote":[{"close":[102.25,100.5,null]}]}}],"error":null}}`

func TestYahooFetcher_FetchDaily(t *testing.T) {
	start := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)

	var gotPath, gotUA string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		fmt.Fprint(w, yahooPayload)
	}))
	defer srv.Close()

	series, err := testYahooFetcher(srv).FetchDaily(context.Background(), "AAPL", start, end)
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/v8/finance/chart/AAPL" {
		t.Errorf("path = %s", gotPath)
	}
	if gotUA != "Mozilla/5.0" {
		t.Errorf("User-Agent = %q, want browser-like agent", gotUA)
	}
	if got := gotQuery["period1"]; len(got) != 1 || got[0] != fmt.Sprint(start.Unix()) {
		t.Errorf("period1 = %v, want %d", got, start.Unix())
	}
	// period2 must land one day past the end so the last trading day is included.
	if got := gotQuery["period2"]; len(got) != 1 || got[0] != fmt.Sprint(end.AddDate(0, 0, 1).Unix()) {
		t.Errorf("period2 = %v, want %d", got, end.AddDate(0, 0, 1).Unix())
	}
	if got := gotQuery["interval"]; len(got) != 1 || got[0] != "1d" {
		t.Errorf("interval = %v, want 1d", got)
	}

	// The null bar is dropped and the remaining bars are sorted by date.
	if len(series.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(series.Points))
	}
	if series.Symbol != "AAPL" {
		t.Errorf("symbol = %s", series.Symbol)
	}
	if series.Points[0].Close != 100.5 || series.Points[1].Close != 102.25 {
		t.Errorf("closes = %v, %v; want 100.5, 102.25", series.Points[0].Close, series.Points[1].Close)
	}
	if !series.Points[0].Date.Before(series.Points[1].Date) {
		t.Error("points are not sorted by date")
	}
}

func TestYahooFetcher_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer srv.Close()

	_, err := testYahooFetcher(srv).FetchDaily(context.Background(), "NOPE", time.Now().AddDate(-1, 0, 0), time.Now())
	if err == nil {
		t.Fatal("expected error for api error payload")
	}
	if !strings.Contains(err.Error(), "delisted") {
		t.Errorf("error should carry the api description, got: %v", err)
	}
}

func TestYahooFetcher_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testYahooFetcher(srv).FetchDaily(context.Background(), "NOPE", time.Now().AddDate(-1, 0, 0), time.Now())
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("error should name the status, got: %v", err)
	}
}

func TestYahooFetcher_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
	}))
	defer srv.Close()

	_, err := testYahooFetcher(srv).FetchDaily(context.Background(), "EMPTY", time.Now().AddDate(-1, 0, 0), time.Now())
	if err == nil || !strings.Contains(err.Error(), "no data") {
		t.Errorf("expected no-data error, got: %v", err)
	}
}

func TestYahooFetcher_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, yahooPayload)
	}))
	defer srv.Close()

	series, err := testYahooFetcher(srv).FetchDaily(context.Background(), "AAPL",
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expected recovery after transient failure: %v", err)
	}
	if len(series.Points) != 2 {
		t.Errorf("got %d points, want 2", len(series.Points))
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
}
