package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"StockBench/internal/model"
)

// Header is the column layout of the comparison CSV. ReadCSV rejects
// files that do not carry exactly these columns.
var Header = []string{
	"Ticker",
	"Total Return (%)",
	"Annualized Return (%)",
	"Volatility (%)",
	"Max Drawdown (%)",
	"Sharpe Ratio",
}

// WriteCSV writes the comparison table with two decimal places per metric.
func WriteCSV(w io.Writer, table model.ComparisonTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range table {
		record := []string{
			row.Symbol,
			formatMetric(row.TotalReturnPct),
			formatMetric(row.AnnualizedReturnPct),
			formatMetric(row.VolatilityPct),
			formatMetric(row.MaxDrawdownPct),
			formatMetric(row.SharpeRatio),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row for %s: %w", row.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a comparison table previously produced by WriteCSV.
func ReadCSV(r io.Reader) (model.ComparisonTable, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv")
	}
	if len(records[0]) != len(Header) {
		return nil, fmt.Errorf("unexpected csv header: %v", records[0])
	}
	for i, name := range Header {
		if records[0][i] != name {
			return nil, fmt.Errorf("unexpected csv column %d: %q", i, records[0][i])
		}
	}

	table := make(model.ComparisonTable, 0, len(records)-1)
	for _, record := range records[1:] {
		row := model.ComparisonRow{Symbol: record[0]}
		fields := []*float64{
			&row.TotalReturnPct,
			&row.AnnualizedReturnPct,
			&row.VolatilityPct,
			&row.MaxDrawdownPct,
			&row.SharpeRatio,
		}
		for i, dst := range fields {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s for %s: %w", Header[i+1], record[0], err)
			}
			*dst = v
		}
		table = append(table, row)
	}
	return table, nil
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
