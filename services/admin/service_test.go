package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomly/models"
	"roomly/services/stats"
	"roomly/upstream"
)

func day(year int, month time.Month, d int) models.Date {
	return models.NewDate(year, month, d)
}

type fakeAPI struct {
	records      []models.ReservationRecord
	history      []models.ReservationRecord
	fetches      int
	updatedID    int64
	deletedID    int64
	setStatus    models.ReservationStatus
	updatedDates *models.DateInterval
}

func (f *fakeAPI) ReservedIntervals(ctx context.Context, roomID int64) ([]models.DateInterval, error) {
	return nil, nil
}

func (f *fakeAPI) UserReservations(ctx context.Context, userID int64) ([]models.ReservationRecord, error) {
	return nil, nil
}

func (f *fakeAPI) AllReservations(ctx context.Context) ([]models.ReservationRecord, error) {
	f.fetches++
	return f.records, nil
}

func (f *fakeAPI) History(ctx context.Context, page, size int) (models.ReservationPage, error) {
	return models.ReservationPage{Content: f.history, TotalPages: 3}, nil
}

func (f *fakeAPI) HistoryStatistics(ctx context.Context) ([]models.ReservationRecord, error) {
	return f.history, nil
}

func (f *fakeAPI) Submit(ctx context.Context, req upstream.SubmitRequest) error { return nil }

func (f *fakeAPI) UpdateDates(ctx context.Context, id int64, iv models.DateInterval) error {
	f.updatedID = id
	f.updatedDates = &iv
	return nil
}

func (f *fakeAPI) UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) error {
	f.updatedID = id
	f.setStatus = status
	return nil
}

func (f *fakeAPI) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func (f *fakeAPI) DeleteForUser(ctx context.Context, id int64) error { return nil }

func newService(api *fakeAPI) *DefaultAdminService {
	return &DefaultAdminService{API: api, Logger: zap.NewNop()}
}

func TestReservations_FilterSortAndPrice(t *testing.T) {
	api := &fakeAPI{records: []models.ReservationRecord{
		{
			ReservationID: 1, Username: "ana", Status: models.StatusPending,
			StartDate: day(2024, time.March, 10), EndDate: day(2024, time.March, 12),
			PricePerNight: 100, RoomNumber: 101,
		},
		{
			ReservationID: 2, Username: "bo", Status: models.StatusAccepted,
			StartDate: day(2024, time.March, 1), EndDate: day(2024, time.March, 8),
			PricePerNight: 50, RoomNumber: 102,
		},
		{
			ReservationID: 3, Username: "ana", Status: models.StatusAccepted,
			StartDate: day(2024, time.March, 5), EndDate: day(2024, time.March, 6),
			PricePerNight: 100, RoomNumber: 101,
		},
	}}
	svc := newService(api)

	rows, err := svc.Reservations(context.Background(), ReservationQuery{
		Filter: stats.Filter{Username: "ana"},
		Sort:   stats.SortState{Column: stats.SortByPrice, Ascending: true},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].ReservationID)
	assert.InDelta(t, 100.0, rows[0].TotalPrice, 1e-9)
	assert.Equal(t, int64(1), rows[1].ReservationID)
	assert.InDelta(t, 200.0, rows[1].TotalPrice, 1e-9)
}

func TestMutations_RefetchAfterCall(t *testing.T) {
	api := &fakeAPI{}
	svc := newService(api)
	ctx := context.Background()

	iv, err := models.NewDateInterval(day(2024, time.April, 1), day(2024, time.April, 5))
	require.NoError(t, err)

	_, err = svc.UpdateDates(ctx, 9, iv)
	require.NoError(t, err)
	assert.Equal(t, int64(9), api.updatedID)
	require.NotNil(t, api.updatedDates)
	assert.Equal(t, 1, api.fetches)

	_, err = svc.UpdateStatus(ctx, 9, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, api.setStatus)
	assert.Equal(t, 2, api.fetches)

	_, err = svc.Delete(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), api.deletedID)
	assert.Equal(t, 3, api.fetches)
}

func TestStatistics_FiltersBeforeAggregating(t *testing.T) {
	api := &fakeAPI{history: []models.ReservationRecord{
		{StartDate: day(2024, time.June, 1), EndDate: day(2024, time.June, 3), RoomType: "Suite"},
		{StartDate: day(2023, time.June, 2), EndDate: day(2023, time.June, 5), RoomType: "Suite"},
		{StartDate: day(2024, time.June, 3), EndDate: day(2024, time.June, 7), RoomType: "Double"},
	}}
	svc := newService(api)

	counts, err := svc.Statistics(context.Background(), stats.Filter{Year: 2024, RoomType: "Suite"})
	require.NoError(t, err)
	assert.Equal(t, 1, counts[6][models.RoomTypeSuite])
	assert.Equal(t, 0, counts[6][models.RoomTypeDouble])
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0}, counts.Series(models.RoomTypeSuite))
}

func TestHistory_PassesThroughPagination(t *testing.T) {
	api := &fakeAPI{history: []models.ReservationRecord{{ReservationID: 4}}}
	svc := newService(api)

	page, err := svc.History(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Content, 1)
}
