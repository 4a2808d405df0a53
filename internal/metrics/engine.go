package metrics

import (
	"errors"
	"fmt"

	"StockBench/internal/model"
)

var (
	// ErrInsufficientData indicates fewer than two price points.
	ErrInsufficientData = errors.New("insufficient price data")
	// ErrInvalidPrice indicates a non-positive close in the series.
	ErrInvalidPrice = errors.New("invalid price")
)

// Compute derives the full set of performance metrics from one price series.
// riskFreeRate is the annual risk-free rate used by the Sharpe ratio.
func Compute(series model.PriceSeries, riskFreeRate float64) (model.MetricsResult, error) {
	var res model.MetricsResult

	total, err := CalculateTotalReturn(series.Points)
	if err != nil {
		return res, err
	}
	annualized, err := CalculateAnnualizedReturn(series.Points)
	if err != nil {
		return res, err
	}
	volatility, err := CalculateVolatility(series.Points)
	if err != nil {
		return res, err
	}
	drawdown, err := CalculateMaxDrawdown(series.Points)
	if err != nil {
		return res, err
	}
	sharpe, err := CalculateSharpeRatio(series.Points, riskFreeRate)
	if err != nil {
		return res, err
	}

	res.TotalReturnPct = total
	res.AnnualizedReturnPct = annualized
	res.VolatilityPct = volatility
	res.MaxDrawdownPct = drawdown
	res.SharpeRatio = sharpe
	return res, nil
}

// closeValues extracts the closing prices, enforcing the series invariants.
func closeValues(points []model.PricePoint) ([]float64, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInsufficientData, len(points))
	}
	closes := make([]float64, len(points))
	for i, p := range points {
		if p.Close <= 0 {
			return nil, fmt.Errorf("%w: close %.4f at %s", ErrInvalidPrice, p.Close, p.Date.Format("2006-01-02"))
		}
		closes[i] = p.Close
	}
	return closes, nil
}

// dailyReturns converts closes into simple day-over-day fractional changes.
func dailyReturns(closes []float64) []float64 {
	rets := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		rets[i-1] = closes[i]/closes[i-1] - 1
	}
	return rets
}
