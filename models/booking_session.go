package models

// BookingSession holds context between opening the booking panel and final
// submission. The reserved snapshot is fetched once when the panel opens and
// only refreshed after a conflict; the session lives in the cache with a TTL.
type BookingSession struct {
	SessionID     string         `json:"sessionId"`
	RoomID        int64          `json:"roomId"`
	RoomNumber    int            `json:"roomNumber"`
	PricePerNight float64        `json:"pricePerNight"`
	Reserved      []DateInterval `json:"reserved"`
	Selection     SelectionState `json:"selection"`
}

// PriceQuote is the nightly cost breakdown for a candidate or confirmed range.
type PriceQuote struct {
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	Total         float64 `json:"total"`
}

// BookingPanelView is what the UI needs to render the calendar: the day sets
// for styling, the current selection, and a quote once the range is locked.
type BookingPanelView struct {
	SessionID     string         `json:"sessionId"`
	RoomID        int64          `json:"roomId"`
	PricePerNight float64        `json:"pricePerNight"`
	FullyReserved []Date         `json:"fullyReserved"`
	Boundary      []Date         `json:"boundary"`
	Highlighted   []Date         `json:"highlighted,omitempty"`
	Selection     SelectionState `json:"selection"`
	Quote         *PriceQuote    `json:"quote,omitempty"`
}
