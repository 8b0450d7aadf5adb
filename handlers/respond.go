package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roomly/services/booking"
	"roomly/upstream"
	"roomly/utils"
)

// requestContext carries the caller's bearer token into upstream calls.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if raw, ok := c.Get("token"); ok {
		if token, ok := raw.(string); ok && token != "" {
			ctx = upstream.WithToken(ctx, token)
		}
	}
	return ctx
}

// callerID returns the authenticated user's ID set by the auth middleware.
func callerID(c *gin.Context) (int64, bool) {
	raw, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := raw.(int64)
	return id, ok && id != 0
}

// serviceError translates service and upstream failures into HTTP responses.
func serviceError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		authErr       *upstream.AuthorizationError
		notFoundErr   *upstream.NotFoundError
		conflictErr   *upstream.ConflictError
		transportErr  *upstream.TransportError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", validationErr.Message)
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.As(err, &authErr):
		status := authErr.Status
		if status != http.StatusUnauthorized && status != http.StatusForbidden {
			status = http.StatusUnauthorized
		}
		utils.JSONError(c, status, "not authorized", err.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Resource+" not found", "")
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, "reservation conflict", conflictErr.Message)
	case errors.As(err, &transportErr):
		utils.JSONError(c, http.StatusBadGateway, "reservation service unavailable", transportErr.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
