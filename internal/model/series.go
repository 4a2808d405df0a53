package model

import "time"

// PricePoint is a single daily closing-price observation.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds the ordered daily closes for one symbol.
// Fetchers return it sorted by date with strictly increasing dates and
// positive closes; consumers treat it as read-only.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}
