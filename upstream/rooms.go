package upstream

import (
	"context"
	"fmt"
	"net/http"

	"roomly/models"
)

// RoomClient exposes the room endpoints of the reservation service. It shares
// the reservation client's transport and error mapping.
type RoomClient struct {
	c *Client
}

func NewRoomClient(c *Client) *RoomClient {
	return &RoomClient{c: c}
}

func (r *RoomClient) All(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.c.doJSON(ctx, http.MethodGet, "/api/rooms", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomClient) ByID(ctx context.Context, id int64) (models.Room, error) {
	var room models.Room
	if err := r.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/user/rooms/%d", id), nil, nil, &room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (r *RoomClient) Create(ctx context.Context, room models.Room) (models.Room, error) {
	var created models.Room
	if err := r.c.doJSON(ctx, http.MethodPost, "/api/admin/rooms/add", nil, room, &created); err != nil {
		return models.Room{}, err
	}
	return created, nil
}

func (r *RoomClient) Update(ctx context.Context, id int64, room models.Room) error {
	return r.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/admin/rooms/%d/edit", id), nil, room, nil)
}

func (r *RoomClient) Delete(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/rooms/%d/delete", id), nil, nil, nil)
}
