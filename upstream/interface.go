// Package upstream is the HTTP client for the external reservation/room
// service, the authority on persistence and conflict resolution. The gateway
// validates optimistically but always defers to upstream answers.
package upstream

import (
	"context"

	"roomly/models"
)

// SubmitRequest carries a new reservation to the reservation service.
type SubmitRequest struct {
	UserID    int64
	RoomID    int64
	Interval  models.DateInterval
	AddedDate models.Date
	Status    models.ReservationStatus
}

// ReservationAPI is the reservation-side surface of the upstream service.
type ReservationAPI interface {
	// ReservedIntervals returns the room's occupied date ranges, one per
	// active reservation. Fetched fresh every time a booking panel opens.
	ReservedIntervals(ctx context.Context, roomID int64) ([]models.DateInterval, error)
	UserReservations(ctx context.Context, userID int64) ([]models.ReservationRecord, error)
	AllReservations(ctx context.Context) ([]models.ReservationRecord, error)
	History(ctx context.Context, page, size int) (models.ReservationPage, error)
	HistoryStatistics(ctx context.Context) ([]models.ReservationRecord, error)
	Submit(ctx context.Context, req SubmitRequest) error
	UpdateDates(ctx context.Context, id int64, iv models.DateInterval) error
	UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
	DeleteForUser(ctx context.Context, id int64) error
}

// RoomAPI is the room-side surface of the upstream service.
type RoomAPI interface {
	All(ctx context.Context) ([]models.Room, error)
	ByID(ctx context.Context, id int64) (models.Room, error)
	Create(ctx context.Context, room models.Room) (models.Room, error)
	Update(ctx context.Context, id int64, room models.Room) error
	Delete(ctx context.Context, id int64) error
}
