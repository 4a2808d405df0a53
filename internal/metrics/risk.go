package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"StockBench/internal/model"
)

// tradingDays is the annualization convention for daily returns.
const tradingDays = 252

// CalculateVolatility returns the annualized standard deviation of daily
// returns in percent. Sample standard deviation, 252 trading days per year.
// A series too short to have two daily returns has zero volatility.
func CalculateVolatility(points []model.PricePoint) (float64, error) {
	closes, err := closeValues(points)
	if err != nil {
		return 0, err
	}
	rets := dailyReturns(closes)
	if len(rets) < 2 {
		return 0, nil
	}
	return stat.StdDev(rets, nil) * math.Sqrt(tradingDays) * 100, nil
}

// CalculateSharpeRatio returns the annualized risk-adjusted return given an
// annual risk-free rate. A series with zero return volatility scores 0
// rather than dividing by zero.
func CalculateSharpeRatio(points []model.PricePoint, riskFreeRate float64) (float64, error) {
	closes, err := closeValues(points)
	if err != nil {
		return 0, err
	}
	rets := dailyReturns(closes)
	if len(rets) < 2 {
		return 0, nil
	}
	std := stat.StdDev(rets, nil)
	if std == 0 {
		return 0, nil
	}
	excess := stat.Mean(rets, nil) - riskFreeRate/tradingDays
	return excess / std * math.Sqrt(tradingDays), nil
}
