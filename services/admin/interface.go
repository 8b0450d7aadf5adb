package admin

import (
	"context"

	"roomly/models"
	"roomly/services/stats"
)

// ReservationQuery narrows and orders the admin reservation table.
type ReservationQuery struct {
	Filter stats.Filter
	Sort   stats.SortState
}

// ReservationRow is a record plus its computed total price, ready for the
// admin table.
type ReservationRow struct {
	models.ReservationRecord
	TotalPrice float64 `json:"totalPrice"`
}

// AdminService serves the admin reservation views. Every mutation is a
// fire-and-forget upstream call followed by a full re-fetch; derived data is
// never patched locally.
type AdminService interface {
	Reservations(ctx context.Context, q ReservationQuery) ([]ReservationRow, error)
	UpdateDates(ctx context.Context, id int64, iv models.DateInterval) ([]ReservationRow, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) ([]ReservationRow, error)
	Delete(ctx context.Context, id int64) ([]ReservationRow, error)
	History(ctx context.Context, page, size int) (models.ReservationPage, error)
	Statistics(ctx context.Context, f stats.Filter) (stats.MonthlyRoomTypeCount, error)
}
