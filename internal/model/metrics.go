package model

// MetricsResult holds all performance metrics derived from one price series.
type MetricsResult struct {
	TotalReturnPct      float64
	AnnualizedReturnPct float64
	VolatilityPct       float64
	MaxDrawdownPct      float64
	SharpeRatio         float64
}

// ComparisonRow pairs a display symbol with its metrics.
type ComparisonRow struct {
	Symbol string
	MetricsResult
}

// ComparisonTable is an ordered set of rows, one per requested symbol,
// preserving request order.
type ComparisonTable []ComparisonRow
