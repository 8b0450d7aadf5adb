package stats

import (
	"sort"

	"roomly/models"
)

// SortColumn names a sortable column of the reservation tables.
type SortColumn string

const (
	SortByStartDate SortColumn = "startDate"
	SortByEndDate   SortColumn = "endDate"
	SortByPrice     SortColumn = "price"
)

// ParseSortColumn validates a raw column name.
func ParseSortColumn(s string) (SortColumn, bool) {
	switch SortColumn(s) {
	case SortByStartDate, SortByEndDate, SortByPrice:
		return SortColumn(s), true
	default:
		return "", false
	}
}

// SortState tracks which column a table is sorted by and in which direction.
type SortState struct {
	Column    SortColumn `json:"column"`
	Ascending bool       `json:"ascending"`
}

// Toggle selects a column: picking the current column flips the direction,
// picking a new one restarts ascending.
func (s SortState) Toggle(column SortColumn) SortState {
	if s.Column == column {
		return SortState{Column: column, Ascending: !s.Ascending}
	}
	return SortState{Column: column, Ascending: true}
}

// Sort orders a copy of the records by the sort state. The sort is stable, so
// ties keep their original fetch order. The input slice is left untouched.
func Sort(records []models.ReservationRecord, state SortState) []models.ReservationRecord {
	if state.Column == "" {
		return records
	}

	sorted := make([]models.ReservationRecord, len(records))
	copy(sorted, records)

	less := func(a, b models.ReservationRecord) bool {
		switch state.Column {
		case SortByEndDate:
			return a.EndDate.Before(b.EndDate)
		case SortByPrice:
			return RecordPrice(a) < RecordPrice(b)
		default:
			return a.StartDate.Before(b.StartDate)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if state.Ascending {
			return less(sorted[i], sorted[j])
		}
		return less(sorted[j], sorted[i])
	})
	return sorted
}
