package report

import (
	"errors"
	"fmt"
	"math"
	"time"

	"StockBench/internal/metrics"
	"StockBench/internal/model"
)

// ErrNoOverlap indicates the requested series share no common trading dates.
var ErrNoOverlap = errors.New("no overlapping trading dates between series")

// normalizedBase is the value every series starts from after rescaling.
const normalizedBase = 100.0

// Report holds the aligned comparison of all requested series.
type Report struct {
	Table      model.ComparisonTable
	Normalized []model.PriceSeries
	Start      time.Time
	End        time.Time
}

// Build aligns the series on their common trading calendar, computes metrics
// for each, and rescales each series to start at 100 for charting. Row and
// series order follow the input order. Table values are rounded to two
// decimals so the terminal table, the CSV, and a re-parsed CSV agree exactly.
func Build(series []model.PriceSeries, riskFreeRate float64) (*Report, error) {
	if len(series) == 0 {
		return nil, errors.New("no series to compare")
	}

	aligned, err := align(series)
	if err != nil {
		return nil, err
	}

	first := aligned[0].Points
	rep := &Report{
		Table:      make(model.ComparisonTable, 0, len(aligned)),
		Normalized: make([]model.PriceSeries, 0, len(aligned)),
		Start:      first[0].Date,
		End:        first[len(first)-1].Date,
	}
	for _, s := range aligned {
		res, err := metrics.Compute(s, riskFreeRate)
		if err != nil {
			return nil, fmt.Errorf("metrics for %s: %w", s.Symbol, err)
		}
		rep.Table = append(rep.Table, model.ComparisonRow{Symbol: s.Symbol, MetricsResult: roundResult(res)})
		rep.Normalized = append(rep.Normalized, normalize(s))
	}
	return rep, nil
}

// align drops dates that are not present in every series. Each series has
// strictly increasing dates, so a date held by all n series is counted
// exactly n times.
func align(series []model.PriceSeries) ([]model.PriceSeries, error) {
	n := len(series)
	counts := make(map[string]int)
	for _, s := range series {
		for _, p := range s.Points {
			counts[p.Date.Format("2006-01-02")]++
		}
	}

	aligned := make([]model.PriceSeries, 0, n)
	for _, s := range series {
		kept := make([]model.PricePoint, 0, len(s.Points))
		for _, p := range s.Points {
			if counts[p.Date.Format("2006-01-02")] == n {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			return nil, ErrNoOverlap
		}
		aligned = append(aligned, model.PriceSeries{Symbol: s.Symbol, Points: kept})
	}
	return aligned, nil
}

// normalize rescales a series so its first close equals normalizedBase.
func normalize(s model.PriceSeries) model.PriceSeries {
	out := model.PriceSeries{Symbol: s.Symbol, Points: make([]model.PricePoint, len(s.Points))}
	first := s.Points[0].Close
	for i, p := range s.Points {
		out.Points[i] = model.PricePoint{Date: p.Date, Close: p.Close / first * normalizedBase}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundResult(r model.MetricsResult) model.MetricsResult {
	return model.MetricsResult{
		TotalReturnPct:      round2(r.TotalReturnPct),
		AnnualizedReturnPct: round2(r.AnnualizedReturnPct),
		VolatilityPct:       round2(r.VolatilityPct),
		MaxDrawdownPct:      round2(r.MaxDrawdownPct),
		SharpeRatio:         round2(r.SharpeRatio),
	}
}
