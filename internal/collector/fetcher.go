package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"StockBench/internal/model"
)

// Fetcher defines the interface for downloading daily price history.
type Fetcher interface {
	// FetchDaily returns the daily closes for symbol between start and end
	// inclusive, sorted by date with strictly increasing dates.
	FetchDaily(ctx context.Context, symbol string, start, end time.Time) (model.PriceSeries, error)
	Name() string
}

// newSeries sorts the points and drops same-day duplicates so the series
// invariants hold regardless of provider quirks.
func newSeries(symbol string, points []model.PricePoint) (model.PriceSeries, error) {
	if len(points) == 0 {
		return model.PriceSeries{}, fmt.Errorf("no usable price data for %s", symbol)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	kept := points[:1]
	for _, p := range points[1:] {
		if sameDay(p.Date, kept[len(kept)-1].Date) {
			continue
		}
		kept = append(kept, p)
	}
	return model.PriceSeries{Symbol: symbol, Points: kept}, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
