package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomly/models"
	"roomly/upstream"
)

func day(d int) models.Date {
	return models.NewDate(2024, time.March, d)
}

func interval(t *testing.T, start, end int) models.DateInterval {
	t.Helper()
	iv, err := models.NewDateInterval(day(start), day(end))
	require.NoError(t, err)
	return iv
}

// fakeUpstream implements upstream.ReservationAPI and upstream.RoomAPI with
// canned data.
type fakeUpstream struct {
	room          models.Room
	reserved      []models.DateInterval
	submitErr     error
	submitted     []upstream.SubmitRequest
	intervalCalls int
}

func (f *fakeUpstream) ReservedIntervals(ctx context.Context, roomID int64) ([]models.DateInterval, error) {
	f.intervalCalls++
	return f.reserved, nil
}

func (f *fakeUpstream) UserReservations(ctx context.Context, userID int64) ([]models.ReservationRecord, error) {
	return nil, nil
}

func (f *fakeUpstream) AllReservations(ctx context.Context) ([]models.ReservationRecord, error) {
	return nil, nil
}

func (f *fakeUpstream) History(ctx context.Context, page, size int) (models.ReservationPage, error) {
	return models.ReservationPage{}, nil
}

func (f *fakeUpstream) HistoryStatistics(ctx context.Context) ([]models.ReservationRecord, error) {
	return nil, nil
}

func (f *fakeUpstream) Submit(ctx context.Context, req upstream.SubmitRequest) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, req)
	return nil
}

func (f *fakeUpstream) UpdateDates(ctx context.Context, id int64, iv models.DateInterval) error {
	return nil
}

func (f *fakeUpstream) UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) error {
	return nil
}

func (f *fakeUpstream) Delete(ctx context.Context, id int64) error        { return nil }
func (f *fakeUpstream) DeleteForUser(ctx context.Context, id int64) error { return nil }

// fakeRooms serves the room side from the same canned data.
type fakeRooms struct {
	f *fakeUpstream
}

func (r fakeRooms) All(ctx context.Context) ([]models.Room, error)          { return nil, nil }
func (r fakeRooms) ByID(ctx context.Context, id int64) (models.Room, error) { return r.f.room, nil }
func (r fakeRooms) Create(ctx context.Context, room models.Room) (models.Room, error) {
	return room, nil
}
func (r fakeRooms) Update(ctx context.Context, id int64, room models.Room) error { return nil }
func (r fakeRooms) Delete(ctx context.Context, id int64) error                   { return nil }

func newService(t *testing.T, fake *fakeUpstream) *DefaultBookingSessionService {
	t.Helper()
	return &DefaultBookingSessionService{
		Reservations: fake,
		Rooms:        fakeRooms{f: fake},
		Store:        NewMemorySessionStore(),
		SessionTTL:   time.Minute,
		Logger:       zap.NewNop(),
	}
}

func TestOpenPanel_BuildsDaySets(t *testing.T) {
	fake := &fakeUpstream{
		room: models.Room{ID: 7, RoomNumber: 101, PricePerNight: 100},
		reserved: []models.DateInterval{
			interval(t, 10, 12),
			interval(t, 15, 18),
		},
	}
	svc := newService(t, fake)

	view, err := svc.OpenPanel(context.Background(), 7)
	require.NoError(t, err)
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, []models.Date{day(11), day(16), day(17)}, view.FullyReserved)
	assert.Equal(t, []models.Date{day(10), day(12), day(15), day(18)}, view.Boundary)
	assert.Equal(t, models.PhasePickingStart, view.Selection.Phase)
	assert.Nil(t, view.Quote)
}

func TestPickDate_FullFlowWithQuote(t *testing.T) {
	fake := &fakeUpstream{room: models.Room{ID: 7, PricePerNight: 100}}
	svc := newService(t, fake)
	ctx := context.Background()

	view, err := svc.OpenPanel(ctx, 7)
	require.NoError(t, err)

	view, err = svc.PickDate(ctx, view.SessionID, day(20))
	require.NoError(t, err)
	assert.False(t, view.Selection.Locked)
	assert.Nil(t, view.Quote)

	view, err = svc.PickDate(ctx, view.SessionID, day(25))
	require.NoError(t, err)
	assert.True(t, view.Selection.Locked)
	require.NotNil(t, view.Quote)
	assert.Equal(t, 5, view.Quote.Nights)
	assert.InDelta(t, 500.0, view.Quote.Total, 1e-9)
	assert.Len(t, view.Highlighted, 6)
}

func TestPickDate_RejectsFullyReservedDay(t *testing.T) {
	fake := &fakeUpstream{
		room:     models.Room{ID: 7, PricePerNight: 100},
		reserved: []models.DateInterval{interval(t, 10, 12)},
	}
	svc := newService(t, fake)
	ctx := context.Background()

	view, err := svc.OpenPanel(ctx, 7)
	require.NoError(t, err)

	// March 11 is interior to the reservation.
	_, err = svc.PickDate(ctx, view.SessionID, day(11))
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	// Boundary days stay selectable.
	_, err = svc.PickDate(ctx, view.SessionID, day(12))
	assert.NoError(t, err)
}

func TestPickDate_EarlierEndRestartsRange(t *testing.T) {
	fake := &fakeUpstream{room: models.Room{ID: 7, PricePerNight: 100}}
	svc := newService(t, fake)
	ctx := context.Background()

	view, err := svc.OpenPanel(ctx, 7)
	require.NoError(t, err)

	view, err = svc.PickDate(ctx, view.SessionID, day(20))
	require.NoError(t, err)
	view, err = svc.PickDate(ctx, view.SessionID, day(18))
	require.NoError(t, err)

	assert.Equal(t, models.PhasePickingEnd, view.Selection.Phase)
	require.NotNil(t, view.Selection.Start)
	assert.True(t, view.Selection.Start.Equal(day(18)))
	assert.Nil(t, view.Selection.End)
	assert.False(t, view.Selection.Locked)
}

func TestSubmit_RequiresLockedSelection(t *testing.T) {
	fake := &fakeUpstream{room: models.Room{ID: 7, PricePerNight: 100}}
	svc := newService(t, fake)
	ctx := context.Background()

	view, err := svc.OpenPanel(ctx, 7)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, view.SessionID, 4)
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Empty(t, fake.submitted)
}

func TestSubmit_SuccessDropsSession(t *testing.T) {
	fake := &fakeUpstream{room: models.Room{ID: 7, PricePerNight: 100}}
	svc := newService(t, fake)
	ctx := context.Background()

	view, err := svc.OpenPanel(ctx, 7)
	require.NoError(t, err)
	_, err = svc.PickDate(ctx, view.SessionID, day(20))
	require.NoError(t, err)
	_, err = svc.PickDate(ctx, view.SessionID, day(25))
	require.NoError(t, err)

	result, err := svc.Submit(ctx, view.SessionID, 4)
	require.NoError(t, err)
	assert.True(t, result.Submitted)
	require.Len(t, fake.submitted, 1)
	assert.Equal(t, models.StatusPending, fake.submitted[0].Status)
	assert.True(t, fake.submitted[0].Interval.Start.Equal(day(20)))

	// Session is gone after a successful submission.
	_, err = svc.PickDate(ctx, view.SessionID, day(1))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmit_ConflictRefreshesSnapshotAndResets(t *testing.T) {
	fake := &fakeUpstream{room: models.Room{ID: 7, PricePerNight: 100}}
	svc := newService(t, fake)
	ctx := context.Background()

	view, err := svc.OpenPanel(ctx, 7)
	require.NoError(t, err)
	_, err = svc.PickDate(ctx, view.SessionID, day(20))
	require.NoError(t, err)
	_, err = svc.PickDate(ctx, view.SessionID, day(25))
	require.NoError(t, err)

	// Another guest takes the room between fetch and submit.
	fake.submitErr = &upstream.ConflictError{Message: "room already reserved"}
	fake.reserved = []models.DateInterval{interval(t, 20, 25)}
	callsBefore := fake.intervalCalls

	result, err := svc.Submit(ctx, view.SessionID, 4)
	require.NoError(t, err)
	assert.False(t, result.Submitted)
	assert.True(t, result.Conflict)
	assert.Contains(t, result.Message, "already reserved")

	// The snapshot was re-fetched and the selection reset.
	assert.Greater(t, fake.intervalCalls, callsBefore)
	require.NotNil(t, result.View)
	assert.False(t, result.View.Selection.Locked)
	assert.Nil(t, result.View.Selection.Start)
	assert.NotEmpty(t, result.View.FullyReserved)

	// The session survives for another attempt.
	status, err := svc.DayStatus(ctx, view.SessionID, day(22))
	require.NoError(t, err)
	assert.Equal(t, models.DayFullyReserved, status)
}

func TestCancel_DiscardsSession(t *testing.T) {
	fake := &fakeUpstream{room: models.Room{ID: 7}}
	svc := newService(t, fake)
	ctx := context.Background()

	view, err := svc.OpenPanel(ctx, 7)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, view.SessionID))

	_, err = svc.ResetSelection(ctx, view.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
