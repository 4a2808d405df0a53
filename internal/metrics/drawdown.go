package metrics

import "StockBench/internal/model"

// CalculateMaxDrawdown returns the largest peak-to-trough decline in percent,
// measured against the running maximum close. The result is never positive;
// a series that only rises returns 0.
func CalculateMaxDrawdown(points []model.PricePoint) (float64, error) {
	closes, err := closeValues(points)
	if err != nil {
		return 0, err
	}
	peak := closes[0]
	maxDD := 0.0
	for _, c := range closes {
		if c > peak {
			peak = c
		}
		if dd := (c/peak - 1) * 100; dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD, nil
}
