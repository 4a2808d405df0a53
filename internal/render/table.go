package render

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"

	"StockBench/internal/export"
	"StockBench/internal/model"
)

// MarkdownReport renders the comparison table as a markdown document.
func MarkdownReport(table model.ComparisonTable, start, end time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Performance Metrics")
	doc.PlainText(fmt.Sprintf("Backtest window: %s to %s",
		start.Format("2006-01-02"), end.Format("2006-01-02")))

	rows := make([][]string, 0, len(table))
	for _, row := range table {
		rows = append(rows, []string{
			row.Symbol,
			fmt.Sprintf("%.2f", row.TotalReturnPct),
			fmt.Sprintf("%.2f", row.AnnualizedReturnPct),
			fmt.Sprintf("%.2f", row.VolatilityPct),
			fmt.Sprintf("%.2f", row.MaxDrawdownPct),
			fmt.Sprintf("%.2f", row.SharpeRatio),
		})
	}
	doc.Table(md.TableSet{Header: export.Header, Rows: rows})

	return doc.String()
}
