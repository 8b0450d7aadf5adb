package models

import (
	"fmt"
	"math"
)

// DateInterval is one reservation's occupied date range, inclusive on both
// ends. Immutable once constructed; an edit replaces the whole interval.
type DateInterval struct {
	Start Date `json:"startDate"`
	End   Date `json:"endDate"`
}

// NewDateInterval validates that end does not precede start. Malformed ranges
// coming from the reservation service are rejected here, before any
// classification runs.
func NewDateInterval(start, end Date) (DateInterval, error) {
	if start.IsZero() || end.IsZero() {
		return DateInterval{}, fmt.Errorf("date interval requires both start and end")
	}
	if end.Before(start) {
		return DateInterval{}, fmt.Errorf("date interval end %s precedes start %s", end, start)
	}
	return DateInterval{Start: start, End: end}, nil
}

// Days enumerates every calendar day from Start to End inclusive, ascending.
func (i DateInterval) Days() []Date {
	days := make([]Date, 0, i.Start.DaysUntil(i.End)+1)
	for d := i.Start; !d.After(i.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Nights is the billable night count: ceil((end-start)/1 day). A single-day
// interval yields 0 nights; pricing callers must treat that as unbillable.
func (i DateInterval) Nights() int {
	return int(math.Ceil(i.End.Time.Sub(i.Start.Time).Hours() / 24))
}

// Contains reports whether d falls inside the interval, boundaries included.
func (i DateInterval) Contains(d Date) bool {
	return !d.Before(i.Start) && !d.After(i.End)
}

// ContainsInterior reports whether d is strictly between Start and End.
func (i DateInterval) ContainsInterior(d Date) bool {
	return d.After(i.Start) && d.Before(i.End)
}

// IntervalRelation describes how two intervals relate on the calendar.
type IntervalRelation int

const (
	RelationBefore IntervalRelation = iota
	RelationAfter
	RelationTouches
	RelationOverlaps
)

func (r IntervalRelation) String() string {
	switch r {
	case RelationBefore:
		return "before"
	case RelationAfter:
		return "after"
	case RelationTouches:
		return "touches"
	default:
		return "overlaps"
	}
}

// Relate compares two intervals. Touches means one interval's end is the
// other's start (checkout morning meets checkin morning); Overlaps means at
// least one shared day beyond that single boundary.
func Relate(a, b DateInterval) IntervalRelation {
	switch {
	case a.End.Before(b.Start):
		return RelationBefore
	case b.End.Before(a.Start):
		return RelationAfter
	case a.End.Equal(b.Start) || b.End.Equal(a.Start):
		return RelationTouches
	default:
		return RelationOverlaps
	}
}
