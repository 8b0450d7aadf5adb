// Package availability derives per-day booking status from a room's reserved
// intervals. The calendar is always rebuilt from the full snapshot; reserved
// sets are bounded by active bookings per room, so a recompute is cheap and
// avoids incremental-update drift.
package availability

import (
	"sort"

	"roomly/models"
)

// Calendar answers day-status queries for one room's reserved snapshot.
type Calendar struct {
	reserved      []models.DateInterval
	fullyReserved map[int64]models.Date
	boundary      map[int64]models.Date
}

// BuildCalendar classifies every day covered by the reserved intervals.
func BuildCalendar(reserved []models.DateInterval) *Calendar {
	cal := &Calendar{
		reserved:      reserved,
		fullyReserved: make(map[int64]models.Date),
		boundary:      make(map[int64]models.Date),
	}

	occupied := make(map[int64]models.Date)
	startsAt := make(map[int64][]int)
	endsAt := make(map[int64][]int)

	for idx, iv := range reserved {
		startsAt[iv.Start.Unix()] = append(startsAt[iv.Start.Unix()], idx)
		endsAt[iv.End.Unix()] = append(endsAt[iv.End.Unix()], idx)
		for _, d := range iv.Days() {
			occupied[d.Unix()] = d
		}
	}

	for key, d := range occupied {
		interior := false
		for _, iv := range reserved {
			if iv.ContainsInterior(d) {
				interior = true
				break
			}
		}

		starts, ends := startsAt[key], endsAt[key]
		switch {
		case interior || meetsBackToBack(starts, ends):
			cal.fullyReserved[key] = d
		case len(starts) > 0 || len(ends) > 0:
			cal.boundary[key] = d
		}
	}

	return cal
}

// meetsBackToBack reports whether a day is the start of one interval and the
// end of another. A single-day interval is its own start and end, which does
// not block the day on its own.
func meetsBackToBack(starts, ends []int) bool {
	if len(starts) == 0 || len(ends) == 0 {
		return false
	}
	if len(starts) == 1 && len(ends) == 1 && starts[0] == ends[0] {
		return false
	}
	return true
}

// Status classifies a single day against the snapshot.
func (c *Calendar) Status(d models.Date) models.DayStatus {
	key := d.Unix()
	if _, ok := c.fullyReserved[key]; ok {
		return models.DayFullyReserved
	}
	if _, ok := c.boundary[key]; ok {
		return models.DayBoundary
	}
	return models.DayFree
}

// IsSelectable reports whether the user may pick the day as a range endpoint.
// Boundary days stay selectable: checkout morning is checkin-eligible for the
// next guest.
func (c *Calendar) IsSelectable(d models.Date) bool {
	return c.Status(d) != models.DayFullyReserved
}

// FullyReservedDays returns the blocked days, ascending, for calendar styling.
func (c *Calendar) FullyReservedDays() []models.Date {
	return sortedDays(c.fullyReserved)
}

// BoundaryDays returns the checkin/checkout edge days, ascending.
func (c *Calendar) BoundaryDays() []models.Date {
	return sortedDays(c.boundary)
}

func sortedDays(set map[int64]models.Date) []models.Date {
	days := make([]models.Date, 0, len(set))
	for _, d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
