package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomly/models"
	"roomly/services/availability"
	"roomly/services/selection"
	"roomly/services/stats"
	"roomly/upstream"
)

// DefaultBookingSessionService implements BookingSessionService on top of the
// upstream reservation service and a session store.
type DefaultBookingSessionService struct {
	Reservations upstream.ReservationAPI
	Rooms        upstream.RoomAPI
	Store        SessionStore
	SessionTTL   time.Duration
	Logger       *zap.Logger
}

// OpenPanel fetches the room and a fresh reserved snapshot, then starts a new
// session. The snapshot is never synced incrementally; reopening the panel is
// the way to refresh it.
func (s *DefaultBookingSessionService) OpenPanel(ctx context.Context, roomID int64) (models.BookingPanelView, error) {
	room, err := s.Rooms.ByID(ctx, roomID)
	if err != nil {
		return models.BookingPanelView{}, err
	}

	reserved, err := s.Reservations.ReservedIntervals(ctx, roomID)
	if err != nil {
		return models.BookingPanelView{}, err
	}

	session := models.BookingSession{
		SessionID:     uuid.New().String(),
		RoomID:        room.ID,
		RoomNumber:    room.RoomNumber,
		PricePerNight: room.PricePerNight,
		Reserved:      reserved,
		Selection:     models.NewSelectionState(),
	}
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return models.BookingPanelView{}, err
	}

	s.Logger.Debug("booking panel opened",
		zap.Int64("roomID", roomID),
		zap.String("sessionID", session.SessionID),
		zap.Int("reservedIntervals", len(reserved)))

	return s.view(session), nil
}

// PickDate applies one calendar click. Days that are fully reserved are
// rejected before the state machine sees them.
func (s *DefaultBookingSessionService) PickDate(ctx context.Context, sessionID string, day models.Date) (models.BookingPanelView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return models.BookingPanelView{}, err
	}

	cal := availability.BuildCalendar(session.Reserved)
	if !cal.IsSelectable(day) {
		return models.BookingPanelView{}, NewValidationError("day %s is fully reserved", day)
	}

	next, err := selection.Pick(session.Selection, day)
	if err != nil {
		if errors.Is(err, selection.ErrLocked) {
			return models.BookingPanelView{}, NewValidationError("selection is locked; reset it to pick new dates")
		}
		return models.BookingPanelView{}, err
	}

	session.Selection = next
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return models.BookingPanelView{}, err
	}
	return s.view(session), nil
}

// ResetSelection clears the picked range. This is the only path out of a
// locked selection.
func (s *DefaultBookingSessionService) ResetSelection(ctx context.Context, sessionID string) (models.BookingPanelView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return models.BookingPanelView{}, err
	}

	session.Selection = selection.Reset()
	if err := s.Store.Save(ctx, session, s.SessionTTL); err != nil {
		return models.BookingPanelView{}, err
	}
	return s.view(session), nil
}

// DayStatus classifies a single day against the session's snapshot.
func (s *DefaultBookingSessionService) DayStatus(ctx context.Context, sessionID string, day models.Date) (models.DayStatus, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return models.DayFree, err
	}
	return availability.BuildCalendar(session.Reserved).Status(day), nil
}

// Submit sends the locked range to the reservation service. Upstream is
// authoritative: if it reports a conflict, the snapshot was stale, so the
// service re-fetches it, resets the selection, and reports the conflict in
// the result rather than as an error.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID string, userID int64) (SubmitResult, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return SubmitResult{}, err
	}

	iv, err := session.Selection.Interval()
	if err != nil {
		return SubmitResult{}, NewValidationError("select both start and end dates before submitting")
	}

	err = s.Reservations.Submit(ctx, upstream.SubmitRequest{
		UserID:    userID,
		RoomID:    session.RoomID,
		Interval:  iv,
		AddedDate: models.Today(),
		Status:    models.StatusPending,
	})

	var conflict *upstream.ConflictError
	switch {
	case err == nil:
		if err := s.Store.Delete(ctx, sessionID); err != nil {
			s.Logger.Warn("failed to drop submitted booking session",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
		s.Logger.Info("reservation submitted",
			zap.Int64("roomID", session.RoomID),
			zap.Int64("userID", userID),
			zap.String("start", iv.Start.String()),
			zap.String("end", iv.End.String()))
		return SubmitResult{Submitted: true}, nil

	case errors.As(err, &conflict):
		refreshed, fetchErr := s.Reservations.ReservedIntervals(ctx, session.RoomID)
		if fetchErr != nil {
			// The conflict stands even if the refresh failed; the session
			// keeps its stale snapshot and a cleared selection.
			s.Logger.Warn("snapshot refresh after conflict failed",
				zap.Int64("roomID", session.RoomID), zap.Error(fetchErr))
		} else {
			session.Reserved = refreshed
		}
		session.Selection = selection.Reset()
		if saveErr := s.Store.Save(ctx, session, s.SessionTTL); saveErr != nil {
			return SubmitResult{}, saveErr
		}
		view := s.view(session)
		return SubmitResult{Conflict: true, Message: conflict.Error(), View: &view}, nil

	default:
		return SubmitResult{}, err
	}
}

// Cancel discards the session, e.g. when the user navigates away.
func (s *DefaultBookingSessionService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultBookingSessionService) view(session models.BookingSession) models.BookingPanelView {
	cal := availability.BuildCalendar(session.Reserved)
	view := models.BookingPanelView{
		SessionID:     session.SessionID,
		RoomID:        session.RoomID,
		PricePerNight: session.PricePerNight,
		FullyReserved: cal.FullyReservedDays(),
		Boundary:      cal.BoundaryDays(),
		Selection:     session.Selection,
	}

	if iv, err := session.Selection.Interval(); err == nil {
		view.Highlighted = iv.Days()
		quote := stats.Quote(iv, session.PricePerNight)
		view.Quote = &quote
	}
	return view
}
