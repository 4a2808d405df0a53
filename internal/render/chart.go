package render

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"StockBench/internal/model"
)

// Chart draws the normalized series as a PNG line chart, one line per
// symbol with a shared time axis and a legend.
func Chart(w io.Writer, normalized []model.PriceSeries, title string, width, height int) error {
	if len(normalized) == 0 {
		return fmt.Errorf("no series to chart")
	}

	series := make([]chart.Series, 0, len(normalized))
	for i, s := range normalized {
		xs := make([]time.Time, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.Date
			ys[j] = p.Close
		}
		series = append(series, chart.TimeSeries{
			Name:    s.Symbol,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			GridMajorStyle: chart.Style{StrokeColor: chart.ColorLightGray, StrokeWidth: 1},
		},
		YAxis: chart.YAxis{
			Name:           "Normalized Price (Start = 100)",
			GridMajorStyle: chart.Style{StrokeColor: chart.ColorLightGray, StrokeWidth: 1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
