package stats

import "roomly/models"

// Filter narrows a record collection before aggregation or display. Zero
// fields mean "no constraint". Apply never mutates its input; it always
// produces a derived slice.
type Filter struct {
	Year       int
	Month      int
	RoomNumber int
	RoomType   string
	Status     models.ReservationStatus
	Username   string
}

// Apply returns the records matching every set constraint, in input order.
func (f Filter) Apply(records []models.ReservationRecord) []models.ReservationRecord {
	filtered := make([]models.ReservationRecord, 0, len(records))
	for _, r := range records {
		if f.Year != 0 && r.StartDate.Year() != f.Year {
			continue
		}
		if f.Month != 0 && int(r.StartDate.Month()) != f.Month {
			continue
		}
		if f.RoomNumber != 0 && r.RoomNumber != f.RoomNumber {
			continue
		}
		if f.RoomType != "" && r.RoomType != f.RoomType {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.Username != "" && r.Username != f.Username {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
