package export

import (
	"bytes"
	"strings"
	"testing"

	"StockBench/internal/model"
)

func sampleTable() model.ComparisonTable {
	return model.ComparisonTable{
		{Symbol: "AAPL", MetricsResult: model.MetricsResult{
			TotalReturnPct:      31.42,
			AnnualizedReturnPct: 14.91,
			VolatilityPct:       22.05,
			MaxDrawdownPct:      -18.18,
			SharpeRatio:         0.87,
		}},
		{Symbol: "^GSPC", MetricsResult: model.MetricsResult{
			TotalReturnPct:      12.3,
			AnnualizedReturnPct: 6.15,
			VolatilityPct:       15.5,
			MaxDrawdownPct:      -9.75,
			SharpeRatio:         0.42,
		}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	wantHeader := "Ticker,Total Return (%),Annualized Return (%),Volatility (%),Max Drawdown (%),Sharpe Ratio"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if lines[1] != "AAPL,31.42,14.91,22.05,-18.18,0.87" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "^GSPC,12.30,6.15,15.50,-9.75,0.42" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestCSVRoundTrip(t *testing.T) {
	table := sampleTable()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(table) {
		t.Fatalf("got %d rows, want %d", len(got), len(table))
	}
	for i := range table {
		if got[i] != table[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], table[i])
		}
	}
}

func TestReadCSV_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "Symbol,Return\nAAPL,5\n"},
		{"renamed column", "Ticker,Total Return (%),Annualized Return (%),Volatility (%),Drawdown,Sharpe Ratio\n"},
		{"non-numeric metric", "Ticker,Total Return (%),Annualized Return (%),Volatility (%),Max Drawdown (%),Sharpe Ratio\nAAPL,abc,1,2,3,4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tc.input)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}
