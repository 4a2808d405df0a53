package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"StockBench/internal/backtest"
)

var indexMenu = []struct {
	label string
	alias string
}{
	{"S&P 500 (SP500)", "SP500"},
	{"NASDAQ (NASDAQ)", "NASDAQ"},
	{"Dow Jones (DOW)", "DOW"},
	{"Russell 2000 (RUSSELL2000)", "RUSSELL2000"},
	{"None (skip comparison)", ""},
}

func rule(n int) string { return strings.Repeat("=", n) }

func banner(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", rule(60))
	fmt.Fprintln(w, "         STOCK BACKTESTER - INTERACTIVE LAUNCHER")
	fmt.Fprintln(w, rule(60))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compare stock performance against market indices")
	fmt.Fprintln(w, "over customizable time periods.")
	fmt.Fprintln(w)
}

// promptRequest walks the user through the wizard. ok is false when input
// runs out or the user declines the final confirmation.
func promptRequest(sc *bufio.Scanner, w io.Writer, defaultDir string) (backtest.Request, bool) {
	banner(w)

	tickers, ok := promptTickers(sc, w)
	if !ok {
		return backtest.Request{}, false
	}
	start, end, ok := promptDateRange(sc, w)
	if !ok {
		return backtest.Request{}, false
	}
	index, ok := promptIndex(sc, w)
	if !ok {
		return backtest.Request{}, false
	}
	dir, ok := promptOutputDir(sc, w, defaultDir)
	if !ok {
		return backtest.Request{}, false
	}

	req := backtest.Request{
		Tickers:   tickers,
		StartYear: start,
		EndYear:   end,
		Index:     index,
		OutputDir: dir,
	}
	if !confirmRequest(sc, w, req) {
		fmt.Fprintf(w, "\nBacktest cancelled.\n")
		return backtest.Request{}, false
	}
	return req, true
}

func promptTickers(sc *bufio.Scanner, w io.Writer) ([]string, bool) {
	fmt.Fprintln(w, "Step 1: Enter Stock Tickers")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, "Enter one or more stock ticker symbols.")
	fmt.Fprintln(w, "Examples: AAPL, MSFT, GOOGL, TSLA, AMZN")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "For multiple stocks, separate with spaces or commas.")
	fmt.Fprintln(w, "Example: AAPL MSFT GOOGL")
	fmt.Fprintln(w)

	for {
		fmt.Fprint(w, "Stock ticker(s): ")
		line, ok := readLine(sc)
		if !ok {
			return nil, false
		}
		if tickers := splitTickers(line); len(tickers) > 0 {
			fmt.Fprintf(w, "\n✓ Will analyze: %s\n\n", strings.Join(tickers, ", "))
			return tickers, true
		}
		fmt.Fprintf(w, "Please enter at least one ticker.\n\n")
	}
}

func splitTickers(line string) []string {
	return strings.FieldsFunc(strings.ToUpper(line), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}

func promptDateRange(sc *bufio.Scanner, w io.Writer) (int, int, bool) {
	fmt.Fprintln(w, "Step 2: Select Date Range")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, "Enter the start and end years for your backtest.")
	fmt.Fprintln(w)

	currentYear := time.Now().Year()
	start, ok := promptYear(sc, w, fmt.Sprintf("Start year (e.g., %d)", currentYear-5), currentYear-5)
	if !ok {
		return 0, 0, false
	}
	for {
		end, ok := promptYear(sc, w, fmt.Sprintf("End year (e.g., %d)", currentYear-1), currentYear-1)
		if !ok {
			return 0, 0, false
		}
		if end >= start {
			fmt.Fprintf(w, "\n✓ Date range: %d to %d\n\n", start, end)
			return start, end, true
		}
		fmt.Fprintf(w, "End year must be >= start year (%d).\n\n", start)
	}
}

func promptYear(sc *bufio.Scanner, w io.Writer, label string, def int) (int, bool) {
	maxYear := time.Now().Year()
	for {
		fmt.Fprintf(w, "%s (default: %d): ", label, def)
		line, ok := readLine(sc)
		if !ok {
			return 0, false
		}
		if line == "" {
			return def, true
		}
		year, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(w, "Please enter a valid year (e.g., 2020).\n\n")
			continue
		}
		if year < 1900 || year > maxYear {
			fmt.Fprintf(w, "Please enter a year between 1900 and %d.\n\n", maxYear)
			continue
		}
		return year, true
	}
}

func promptIndex(sc *bufio.Scanner, w io.Writer) (string, bool) {
	fmt.Fprintln(w, "Step 3: Choose Comparison Index (Optional)")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, "Compare your stock(s) against a market index:")
	fmt.Fprintln(w)
	for i, item := range indexMenu {
		fmt.Fprintf(w, "  %d. %s\n", i+1, item.label)
	}
	fmt.Fprintln(w)

	for {
		fmt.Fprintf(w, "Your choice (1-%d, default: 1): ", len(indexMenu))
		line, ok := readLine(sc)
		if !ok {
			return "", false
		}
		if line == "" {
			line = "1"
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(indexMenu) {
			fmt.Fprintf(w, "Please enter a number between 1 and %d.\n\n", len(indexMenu))
			continue
		}
		alias := indexMenu[n-1].alias
		if alias != "" {
			fmt.Fprintf(w, "\n✓ Will compare against: %s\n\n", alias)
		} else {
			fmt.Fprintf(w, "\n✓ No index comparison\n\n")
		}
		return alias, true
	}
}

func promptOutputDir(sc *bufio.Scanner, w io.Writer, def string) (string, bool) {
	fmt.Fprintln(w, "Step 4: Output Directory (Optional)")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Output directory (default: %s): ", def)
	line, ok := readLine(sc)
	if !ok {
		return "", false
	}
	if line == "" {
		line = def
	}
	fmt.Fprintf(w, "\n✓ Results will be saved to: %s\n\n", line)
	return line, true
}

func confirmRequest(sc *bufio.Scanner, w io.Writer, req backtest.Request) bool {
	fmt.Fprintln(w, rule(60))
	fmt.Fprintln(w, "BACKTEST CONFIGURATION")
	fmt.Fprintln(w, rule(60))
	fmt.Fprintf(w, "Stock Ticker(s): %s\n", strings.Join(req.Tickers, ", "))
	fmt.Fprintf(w, "Date Range: %d - %d\n", req.StartYear, req.EndYear)
	index := req.Index
	if index == "" {
		index = "None"
	}
	fmt.Fprintf(w, "Compare Against: %s\n", index)
	fmt.Fprintf(w, "Output Directory: %s\n", req.OutputDir)
	fmt.Fprintln(w, rule(60))
	fmt.Fprintln(w)

	fmt.Fprint(w, "Run backtest with these settings? (Y/n): ")
	line, ok := readLine(sc)
	if !ok {
		return false
	}
	switch strings.ToLower(line) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}
