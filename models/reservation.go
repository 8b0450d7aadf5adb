package models

// ReservationStatus is the lifecycle state of a reservation. Transitions are
// performed by the reservation service on admin request; the gateway only
// relays them.
type ReservationStatus string

const (
	StatusPending  ReservationStatus = "Pending"
	StatusAccepted ReservationStatus = "Accepted"
	StatusDenied   ReservationStatus = "Denied"
	StatusArchived ReservationStatus = "Archived"
)

// ParseReservationStatus validates a raw status string.
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusPending, StatusAccepted, StatusDenied, StatusArchived:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}

// ReservationRecord is one reservation as reported by the reservation
// service, current or historical. RoomType is kept raw here; the stats layer
// maps it onto the closed RoomType set.
type ReservationRecord struct {
	ReservationID int64             `json:"reservationId"`
	StartDate     Date              `json:"startDate"`
	EndDate       Date              `json:"endDate"`
	AddedDate     Date              `json:"addedDate"`
	Status        ReservationStatus `json:"status"`
	RoomID        int64             `json:"roomId"`
	RoomNumber    int               `json:"roomNumber"`
	RoomType      string            `json:"roomType,omitempty"`
	PricePerNight float64           `json:"pricePerNight"`
	Username      string            `json:"username,omitempty"`
	PhotoURL      string            `json:"photoUrl,omitempty"`
}

// Interval returns the record's occupied date range.
func (r ReservationRecord) Interval() DateInterval {
	return DateInterval{Start: r.StartDate, End: r.EndDate}
}

// ReservationPage is one page of the admin history view.
type ReservationPage struct {
	Content    []ReservationRecord `json:"content"`
	TotalPages int                 `json:"totalPages"`
}
