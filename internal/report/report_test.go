package report

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockBench/internal/metrics"
	"StockBench/internal/model"
)

func day(offset int) time.Time {
	return time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func series(symbol string, firstDay int, closes ...float64) model.PriceSeries {
	s := model.PriceSeries{Symbol: symbol}
	for i, c := range closes {
		s.Points = append(s.Points, model.PricePoint{Date: day(firstDay + i), Close: c})
	}
	return s
}

func TestBuild_DisjointRanges(t *testing.T) {
	a := series("AAA", 0, 100, 101, 102)
	b := series("BBB", 30, 50, 51, 52)

	_, err := Build([]model.PriceSeries{a, b}, 0)
	if !errors.Is(err, ErrNoOverlap) {
		t.Fatalf("expected ErrNoOverlap, got %v", err)
	}
}

func TestBuild_IntersectionDropsMissingDates(t *testing.T) {
	// AAA trades on days 0..4, BBB misses day 2.
	a := series("AAA", 0, 100, 101, 102, 103, 104)
	b := model.PriceSeries{Symbol: "BBB", Points: []model.PricePoint{
		{Date: day(0), Close: 50},
		{Date: day(1), Close: 51},
		{Date: day(3), Close: 53},
		{Date: day(4), Close: 54},
	}}

	rep, err := Build([]model.PriceSeries{a, b}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, norm := range rep.Normalized {
		if len(norm.Points) != 4 {
			t.Errorf("%s: aligned to %d points, want 4", norm.Symbol, len(norm.Points))
		}
		for _, p := range norm.Points {
			if p.Date.Equal(day(2)) {
				t.Errorf("%s still contains the dropped date", norm.Symbol)
			}
		}
	}
	if !rep.Start.Equal(day(0)) || !rep.End.Equal(day(4)) {
		t.Errorf("range = %s..%s, want %s..%s", rep.Start, rep.End, day(0), day(4))
	}
}

func TestBuild_PreservesRequestOrder(t *testing.T) {
	list := []model.PriceSeries{
		series("ZZZ", 0, 10, 11, 12),
		series("AAA", 0, 20, 21, 22),
		series("MMM", 0, 30, 31, 32),
	}
	rep, err := Build(list, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ZZZ", "AAA", "MMM"}
	for i, row := range rep.Table {
		if row.Symbol != want[i] {
			t.Errorf("row %d = %s, want %s", i, row.Symbol, want[i])
		}
		if rep.Normalized[i].Symbol != want[i] {
			t.Errorf("normalized %d = %s, want %s", i, rep.Normalized[i].Symbol, want[i])
		}
	}
}

func TestBuild_NormalizesToBase100(t *testing.T) {
	a := series("AAA", 0, 200, 220, 180)
	b := series("BBB", 0, 40, 44, 36)

	rep, err := Build([]model.PriceSeries{a, b}, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, norm := range rep.Normalized {
		if norm.Points[0].Close != 100 {
			t.Errorf("%s starts at %.4f, want 100", norm.Symbol, norm.Points[0].Close)
		}
	}
	// Both series move +10% then -18.18%, so their normalized paths match.
	for i := range rep.Normalized[0].Points {
		pa := rep.Normalized[0].Points[i].Close
		pb := rep.Normalized[1].Points[i].Close
		if math.Abs(pa-pb) > 1e-9 {
			t.Errorf("point %d: %s=%.6f vs %s=%.6f", i, "AAA", pa, "BBB", pb)
		}
	}
}

func TestBuild_RowsAreRoundedEngineValues(t *testing.T) {
	s := series("AAA", 0, 100, 110, 90, 120)
	rep, err := Build([]model.PriceSeries{s}, 0.04)
	if err != nil {
		t.Fatal(err)
	}

	exact, err := metrics.Compute(s, 0.04)
	if err != nil {
		t.Fatal(err)
	}
	row := rep.Table[0]
	if row.MaxDrawdownPct != math.Round(exact.MaxDrawdownPct*100)/100 {
		t.Errorf("MaxDrawdownPct = %v, want rounded %v", row.MaxDrawdownPct, exact.MaxDrawdownPct)
	}
	if row.MaxDrawdownPct != -18.18 {
		t.Errorf("MaxDrawdownPct = %v, want -18.18", row.MaxDrawdownPct)
	}
	if row.TotalReturnPct != 20.00 {
		t.Errorf("TotalReturnPct = %v, want 20.00", row.TotalReturnPct)
	}
}

func TestBuild_SingleSeries(t *testing.T) {
	rep, err := Build([]model.PriceSeries{series("ONLY", 0, 100, 105, 95, 102)}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Table) != 1 || len(rep.Normalized) != 1 {
		t.Fatalf("expected exactly one row and one series, got %d/%d", len(rep.Table), len(rep.Normalized))
	}
	if len(rep.Normalized[0].Points) != 4 {
		t.Errorf("single series must keep all %d points, got %d", 4, len(rep.Normalized[0].Points))
	}
}

func TestBuild_OneCommonDateIsInsufficient(t *testing.T) {
	// The calendars overlap on a single day, which is too short for metrics.
	a := series("AAA", 0, 100, 101, 102)
	b := series("BBB", 2, 50, 51, 52)

	_, err := Build([]model.PriceSeries{a, b}, 0)
	if !errors.Is(err, metrics.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestBuild_Empty(t *testing.T) {
	if _, err := Build(nil, 0); err == nil {
		t.Fatal("expected error for empty input")
	}
}
