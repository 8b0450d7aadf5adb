package models

// DayStatus classifies a calendar day against a room's reserved intervals.
// It is always derived from the current snapshot, never stored.
type DayStatus int

const (
	// DayFree has no reservation touching it.
	DayFree DayStatus = iota
	// DayBoundary is the first or last day of exactly one reservation and not
	// covered by any other; it stays selectable (checkout morning doubles as
	// the next guest's checkin morning).
	DayBoundary
	// DayFullyReserved is interior to a reservation, or shared by two
	// back-to-back reservations that touch on it.
	DayFullyReserved
)

func (s DayStatus) String() string {
	switch s {
	case DayBoundary:
		return "Boundary"
	case DayFullyReserved:
		return "FullyReserved"
	default:
		return "Free"
	}
}

func (s DayStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}
