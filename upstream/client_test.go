package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomly/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zap.NewNop())
}

func TestReservedIntervals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/reservations/7/reserved-dates", r.URL.Path)
		json.NewEncoder(w).Encode([]dateRangeDTO{
			{StartDate: "2024-03-10", EndDate: "2024-03-12"},
			{StartDate: "2024-03-15", EndDate: "2024-03-18"},
		})
	})

	intervals, err := client.ReservedIntervals(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, intervals, 2)
	assert.True(t, intervals[0].Start.Equal(models.NewDate(2024, time.March, 10)))
	assert.Equal(t, 3, intervals[1].Nights())
}

func TestReservedIntervals_RejectsMalformedRange(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]dateRangeDTO{
			{StartDate: "2024-03-12", EndDate: "2024-03-10"},
		})
	})

	_, err := client.ReservedIntervals(context.Background(), 7)
	assert.Error(t, err)
}

func TestSubmit_ForwardsTokenAndPayload(t *testing.T) {
	var got submitDTO
	var auth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	iv, err := models.NewDateInterval(models.NewDate(2024, time.March, 20), models.NewDate(2024, time.March, 25))
	require.NoError(t, err)

	ctx := WithToken(context.Background(), "token-123")
	err = client.Submit(ctx, SubmitRequest{
		UserID:    4,
		RoomID:    7,
		Interval:  iv,
		AddedDate: models.NewDate(2024, time.March, 1),
		Status:    models.StatusPending,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-123", auth)
	assert.Equal(t, int64(4), got.AppUserID)
	assert.Equal(t, "2024-03-20", got.ReservationDates.StartDate)
	assert.Equal(t, "2024-03-25", got.ReservationDates.EndDate)
	assert.Equal(t, "Pending", got.Status)
}

func TestSubmit_MapsConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(errorBody{Message: "room already reserved for those dates"})
	})

	err := client.Submit(context.Background(), SubmitRequest{Status: models.StatusPending})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Error(), "already reserved")
}

func TestDoJSON_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"unauthorized", http.StatusUnauthorized, func(t *testing.T, err error) {
			var e *AuthorizationError
			assert.ErrorAs(t, err, &e)
		}},
		{"forbidden", http.StatusForbidden, func(t *testing.T, err error) {
			var e *AuthorizationError
			assert.ErrorAs(t, err, &e)
		}},
		{"not found", http.StatusNotFound, func(t *testing.T, err error) {
			var e *NotFoundError
			assert.ErrorAs(t, err, &e)
		}},
		{"server error", http.StatusInternalServerError, func(t *testing.T, err error) {
			var e *TransportError
			assert.ErrorAs(t, err, &e)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := client.AllReservations(context.Background())
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestDoJSON_NetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, time.Second, zap.NewNop())
	_, err := client.AllReservations(context.Background())
	var transport *TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestHistory_Pagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))
		json.NewEncoder(w).Encode(historyPageDTO{
			Content: []reservationDTO{{
				ReservationID: 9,
				StartDate:     "2024-05-01",
				EndDate:       "2024-05-03",
				AddedDate:     "2024-04-20",
				Status:        "Archived",
				RoomNumber:    101,
				RoomType:      "Suite",
				PricePerNight: 150,
				Username:      "ana",
			}},
			TotalPages: 5,
		})
	})

	page, err := client.History(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalPages)
	require.Len(t, page.Content, 1)
	assert.Equal(t, models.StatusArchived, page.Content[0].Status)
	assert.Equal(t, 101, page.Content[0].RoomNumber)
}
