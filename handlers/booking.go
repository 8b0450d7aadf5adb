package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roomly/models"
	"roomly/services/booking"
)

// BookingService is assigned during startup wiring.
var BookingService booking.BookingSessionService

// OpenBookingPanel fetches the room and its reserved dates and opens a fresh
// booking session for the caller.
func OpenBookingPanel(c *gin.Context) {
	var input struct {
		RoomID int64 `json:"roomId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := BookingService.OpenPanel(requestContext(c), input.RoomID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PickBookingDate applies one click of the two-click date selection.
func PickBookingDate(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date string `json:"date" binding:"required,dateonly"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	day, err := models.ParseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := BookingService.PickDate(requestContext(c), sessionID, day)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ResetBookingSelection clears the picked dates and unlocks the session.
func ResetBookingSelection(c *gin.Context) {
	sessionID := c.Param("sessionID")

	view, err := BookingService.ResetSelection(requestContext(c), sessionID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// BookingDayStatus classifies a single calendar day for the session's room.
func BookingDayStatus(c *gin.Context) {
	sessionID := c.Param("sessionID")
	day, err := models.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	status, err := BookingService.DayStatus(requestContext(c), sessionID, day)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": day, "status": status})
}

// SubmitBooking sends the locked selection to the reservation service. A
// conflicted submission returns 409 together with the refreshed panel so the
// client can re-render without another round trip.
func SubmitBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	result, err := BookingService.Submit(requestContext(c), sessionID, userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	if result.Conflict {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelBookingPanel discards the session without submitting anything.
func CancelBookingPanel(c *gin.Context) {
	sessionID := c.Param("sessionID")

	if err := BookingService.Cancel(requestContext(c), sessionID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
