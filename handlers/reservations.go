package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roomly/models"
	"roomly/services/stats"
	"roomly/upstream"
)

// Reservations is assigned during startup wiring.
var Reservations upstream.ReservationAPI

type userReservationRow struct {
	models.ReservationRecord
	TotalPrice float64 `json:"totalPrice"`
}

// MyReservations lists the caller's reservations with computed totals.
func MyReservations(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	records, err := Reservations.UserReservations(requestContext(c), userID)
	if err != nil {
		serviceError(c, err)
		return
	}

	rows := make([]userReservationRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, userReservationRow{
			ReservationRecord: r,
			TotalPrice:        stats.RecordPrice(r),
		})
	}
	c.JSON(http.StatusOK, rows)
}

// DeleteMyReservation withdraws one of the caller's reservations.
func DeleteMyReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	if err := Reservations.DeleteForUser(requestContext(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
