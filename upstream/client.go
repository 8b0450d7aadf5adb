package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"roomly/models"
)

// Client talks to the reservation service over HTTP. It implements both
// ReservationAPI and RoomAPI.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a client for the given base URL. The timeout bounds every
// request; there is no retry loop.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type errorBody struct {
	Message string `json:"message"`
}

// doJSON performs one request and decodes a JSON response into out (out may
// be nil for fire-and-forget calls). Upstream failures are mapped onto the
// gateway's error taxonomy here, in one place.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := TokenFrom(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: method + " " + path, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	case resp.StatusCode == http.StatusConflict:
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &ConflictError{Message: eb.Message}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthorizationError{Status: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Resource: path}
	default:
		c.logger.Warn("unexpected upstream status",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return &TransportError{Op: method + " " + path, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
}

// ReservedIntervals fetches a room's occupied ranges. Intervals the service
// reports with end < start are rejected here rather than propagated.
func (c *Client) ReservedIntervals(ctx context.Context, roomID int64) ([]models.DateInterval, error) {
	var dtos []dateRangeDTO
	path := fmt.Sprintf("/api/user/reservations/%d/reserved-dates", roomID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &dtos); err != nil {
		return nil, err
	}

	intervals := make([]models.DateInterval, 0, len(dtos))
	for _, dto := range dtos {
		iv, err := dto.toInterval()
		if err != nil {
			return nil, fmt.Errorf("room %d reserved dates: %w", roomID, err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

func (c *Client) UserReservations(ctx context.Context, userID int64) ([]models.ReservationRecord, error) {
	var dtos []reservationDTO
	path := fmt.Sprintf("/api/user/%d/reservations", userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &dtos); err != nil {
		return nil, err
	}
	return toRecords(dtos)
}

func (c *Client) AllReservations(ctx context.Context) ([]models.ReservationRecord, error) {
	var dtos []reservationDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/reservations", nil, nil, &dtos); err != nil {
		return nil, err
	}
	return toRecords(dtos)
}

func (c *Client) History(ctx context.Context, page, size int) (models.ReservationPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var dto historyPageDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/reservations/history", query, nil, &dto); err != nil {
		return models.ReservationPage{}, err
	}

	records, err := toRecords(dto.Content)
	if err != nil {
		return models.ReservationPage{}, err
	}
	return models.ReservationPage{Content: records, TotalPages: dto.TotalPages}, nil
}

func (c *Client) HistoryStatistics(ctx context.Context) ([]models.ReservationRecord, error) {
	var dtos []reservationDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/reservations/history-statistics", nil, nil, &dtos); err != nil {
		return nil, err
	}
	return toRecords(dtos)
}

func (c *Client) Submit(ctx context.Context, req SubmitRequest) error {
	body := submitDTO{
		AppUserID: req.UserID,
		RoomID:    req.RoomID,
		ReservationDates: reservationDatesDTO{
			StartDate: req.Interval.Start.String(),
			EndDate:   req.Interval.End.String(),
			AddedDate: req.AddedDate.String(),
		},
		Status: string(req.Status),
	}
	return c.doJSON(ctx, http.MethodPost, "/api/user/reservations", nil, body, nil)
}

func (c *Client) UpdateDates(ctx context.Context, id int64, iv models.DateInterval) error {
	body := updateDatesDTO{StartDate: iv.Start.String(), EndDate: iv.End.String()}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/admin/reservations/%d", id), nil, body, nil)
}

func (c *Client) UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) error {
	body := updateStatusDTO{Status: string(status)}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/admin/reservations/%d/status", id), nil, body, nil)
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/reservations/%d/delete", id), nil, nil, nil)
}

func (c *Client) DeleteForUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/user/reservations/%d/delete", id), nil, nil, nil)
}
