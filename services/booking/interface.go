package booking

import (
	"context"

	"roomly/models"
)

// SubmitResult reports the outcome of a submission attempt. A conflict is not
// an error at this level: the service has already refreshed the snapshot and
// reset the selection, and the returned view reflects that.
type SubmitResult struct {
	Submitted bool                    `json:"submitted"`
	Conflict  bool                    `json:"conflict"`
	Message   string                  `json:"message,omitempty"`
	View      *models.BookingPanelView `json:"panel,omitempty"`
}

// BookingSessionService drives the booking panel: snapshot fetch, day
// classification, the two-click selection, and final submission.
type BookingSessionService interface {
	OpenPanel(ctx context.Context, roomID int64) (models.BookingPanelView, error)
	PickDate(ctx context.Context, sessionID string, day models.Date) (models.BookingPanelView, error)
	ResetSelection(ctx context.Context, sessionID string) (models.BookingPanelView, error)
	DayStatus(ctx context.Context, sessionID string, day models.Date) (models.DayStatus, error)
	Submit(ctx context.Context, sessionID string, userID int64) (SubmitResult, error)
	Cancel(ctx context.Context, sessionID string) error
}
