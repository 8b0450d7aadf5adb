// Package stats computes prices and reporting aggregates from reservation
// records. Everything here is a pure function over explicit inputs; aggregates
// are recomputed from scratch on every call.
package stats

import "roomly/models"

// TotalPrice is the nightly cost of a date range, used identically for a
// pending candidate selection and for confirmed records. A start==end range
// has zero nights and therefore a zero price.
func TotalPrice(iv models.DateInterval, pricePerNight float64) float64 {
	nights := iv.Nights()
	if nights <= 0 {
		return 0
	}
	return float64(nights) * pricePerNight
}

// Quote bundles the price breakdown the UI shows next to a locked selection.
func Quote(iv models.DateInterval, pricePerNight float64) models.PriceQuote {
	return models.PriceQuote{
		Nights:        iv.Nights(),
		PricePerNight: pricePerNight,
		Total:         TotalPrice(iv, pricePerNight),
	}
}

// RecordPrice prices one reservation record.
func RecordPrice(r models.ReservationRecord) float64 {
	return TotalPrice(r.Interval(), r.PricePerNight)
}
