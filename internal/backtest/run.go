package backtest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"StockBench/internal/collector"
	"StockBench/internal/config"
	"StockBench/internal/export"
	"StockBench/internal/httputil"
	"StockBench/internal/model"
	"StockBench/internal/render"
	"StockBench/internal/report"
)

// Request describes a single backtest run.
type Request struct {
	Tickers   []string
	StartYear int
	EndYear   int
	Index     string // optional market index alias, e.g. SP500
	OutputDir string // empty means the configured output directory
}

// Validate normalizes the request in place and reports the first problem.
func (r *Request) Validate() error {
	cleaned := make([]string, 0, len(r.Tickers))
	for _, t := range r.Tickers {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			cleaned = append(cleaned, t)
		}
	}
	r.Tickers = cleaned
	if len(r.Tickers) == 0 {
		return fmt.Errorf("at least one ticker is required")
	}
	if r.StartYear > r.EndYear {
		return fmt.Errorf("start year %d is after end year %d", r.StartYear, r.EndYear)
	}
	r.Index = strings.ToUpper(strings.TrimSpace(r.Index))
	if r.Index != "" {
		if _, err := model.ResolveIndex(r.Index); err != nil {
			return err
		}
	}
	return nil
}

// Run executes a backtest: fetch daily closes for every requested symbol,
// compare them over their shared trading days, print the report to out and
// save the CSV and chart files. Output files are rendered in memory first,
// so a failing run leaves no files behind.
func Run(ctx context.Context, cfg *config.Config, req Request, out io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	start := time.Date(req.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(req.EndYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	log.Printf("[INFO] backtesting %d to %d via %s", req.StartYear, req.EndYear, fetcher.Name())
	log.Printf("[INFO] tickers: %s", strings.Join(req.Tickers, ", "))

	symbols := append([]string(nil), req.Tickers...)
	if req.Index != "" {
		sym, err := model.ResolveIndex(req.Index)
		if err != nil {
			return err
		}
		log.Printf("[INFO] comparing against %s (%s)", req.Index, sym)
		symbols = append(symbols, sym)
	}

	series, err := collector.NewCollector(fetcher).Collect(ctx, symbols, start, end)
	if err != nil {
		return err
	}
	// Report the index under its alias, the way it was requested.
	if req.Index != "" {
		series[len(series)-1].Symbol = req.Index
	}

	rep, err := report.Build(series, cfg.Metrics.RiskFreeRate)
	if err != nil {
		return err
	}

	doc := render.MarkdownReport(rep.Table, rep.Start, rep.End)

	var csvBuf bytes.Buffer
	if err := export.WriteCSV(&csvBuf, rep.Table); err != nil {
		return err
	}

	title := fmt.Sprintf("Performance Comparison (%d - %d)", req.StartYear, req.EndYear)
	var chartBuf bytes.Buffer
	if err := render.Chart(&chartBuf, rep.Normalized, title, cfg.Output.ChartWidth, cfg.Output.ChartHeight); err != nil {
		return err
	}

	render.PrintMarkdown(out, doc)

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	csvPath := filepath.Join(outputDir, fmt.Sprintf("backtest_%d_%d.csv", req.StartYear, req.EndYear))
	if err := os.WriteFile(csvPath, csvBuf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	log.Printf("[INFO] results saved to %s", csvPath)

	pngPath := filepath.Join(outputDir, fmt.Sprintf("performance_%d_%d.png", req.StartYear, req.EndYear))
	if err := os.WriteFile(pngPath, chartBuf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	log.Printf("[INFO] chart saved to %s", pngPath)

	log.Printf("[INFO] backtest complete")
	return nil
}

// newFetcher builds the price fetcher selected by the configuration.
func newFetcher(cfg *config.Config) (collector.Fetcher, error) {
	retry := httputil.RetryConfig{
		MaxAttempts: cfg.Provider.Retry.MaxAttempts,
		BaseDelay:   time.Duration(cfg.Provider.Retry.BaseDelayMS) * time.Millisecond,
		MaxDelay:    time.Duration(cfg.Provider.Retry.MaxDelayMS) * time.Millisecond,
	}
	switch cfg.Provider.Name {
	case "yahoo":
		f := collector.NewYahooFetcher(cfg.Proxy, cfg.Timeout(), retry)
		if cfg.Provider.BaseURL != "" {
			f.BaseURL = cfg.Provider.BaseURL
		}
		return f, nil
	case "stooq":
		f := collector.NewStooqFetcher(cfg.Proxy, cfg.Timeout(), retry)
		if cfg.Provider.BaseURL != "" {
			f.BaseURL = cfg.Provider.BaseURL
		}
		return f, nil
	case "mock":
		return &collector.MockFetcher{}, nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider.Name)
	}
}
