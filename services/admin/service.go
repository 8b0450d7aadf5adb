package admin

import (
	"context"

	"go.uber.org/zap"

	"roomly/models"
	"roomly/services/stats"
	"roomly/upstream"
)

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	API    upstream.ReservationAPI
	Logger *zap.Logger
}

func (s *DefaultAdminService) Reservations(ctx context.Context, q ReservationQuery) ([]ReservationRow, error) {
	records, err := s.API.AllReservations(ctx)
	if err != nil {
		return nil, err
	}
	return buildRows(records, q), nil
}

// UpdateDates relays an interval change and returns the re-fetched table.
func (s *DefaultAdminService) UpdateDates(ctx context.Context, id int64, iv models.DateInterval) ([]ReservationRow, error) {
	if err := s.API.UpdateDates(ctx, id, iv); err != nil {
		return nil, err
	}
	s.Logger.Info("reservation dates updated",
		zap.Int64("reservationID", id),
		zap.String("start", iv.Start.String()),
		zap.String("end", iv.End.String()))
	return s.Reservations(ctx, ReservationQuery{})
}

func (s *DefaultAdminService) UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) ([]ReservationRow, error) {
	if err := s.API.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.Logger.Info("reservation status updated",
		zap.Int64("reservationID", id), zap.String("status", string(status)))
	return s.Reservations(ctx, ReservationQuery{})
}

func (s *DefaultAdminService) Delete(ctx context.Context, id int64) ([]ReservationRow, error) {
	if err := s.API.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.Logger.Info("reservation deleted", zap.Int64("reservationID", id))
	return s.Reservations(ctx, ReservationQuery{})
}

func (s *DefaultAdminService) History(ctx context.Context, page, size int) (models.ReservationPage, error) {
	return s.API.History(ctx, page, size)
}

// Statistics filters the archived records, then aggregates them into the
// month x room-type counts the dashboard chart renders.
func (s *DefaultAdminService) Statistics(ctx context.Context, f stats.Filter) (stats.MonthlyRoomTypeCount, error) {
	records, err := s.API.HistoryStatistics(ctx)
	if err != nil {
		return nil, err
	}
	return stats.AggregateByMonthAndType(f.Apply(records)), nil
}

func buildRows(records []models.ReservationRecord, q ReservationQuery) []ReservationRow {
	filtered := q.Filter.Apply(records)
	sorted := stats.Sort(filtered, q.Sort)

	rows := make([]ReservationRow, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, ReservationRow{
			ReservationRecord: r,
			TotalPrice:        stats.RecordPrice(r),
		})
	}
	return rows
}
