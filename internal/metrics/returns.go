package metrics

import (
	"fmt"
	"math"

	"StockBench/internal/model"
)

// CalculateTotalReturn returns the percent change from the first close to the last.
func CalculateTotalReturn(points []model.PricePoint) (float64, error) {
	closes, err := closeValues(points)
	if err != nil {
		return 0, err
	}
	return (closes[len(closes)-1]/closes[0] - 1) * 100, nil
}

// CalculateAnnualizedReturn compounds the total growth into an annual rate
// using the calendar span between the first and last observation.
func CalculateAnnualizedReturn(points []model.PricePoint) (float64, error) {
	closes, err := closeValues(points)
	if err != nil {
		return 0, err
	}
	days := points[len(points)-1].Date.Sub(points[0].Date).Hours() / 24
	if days <= 0 {
		return 0, fmt.Errorf("%w: observations must span at least one day", ErrInsufficientData)
	}
	growth := closes[len(closes)-1] / closes[0]
	return (math.Pow(growth, 365.25/days) - 1) * 100, nil
}
