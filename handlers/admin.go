package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roomly/models"
	"roomly/services/admin"
	"roomly/services/stats"
)

// AdminSvc is assigned during startup wiring.
var AdminSvc admin.AdminService

// queryFilter builds a record filter from query parameters. Unknown or
// malformed values are treated as unset, matching how the views clear a
// filter field.
func queryFilter(c *gin.Context) stats.Filter {
	f := stats.Filter{
		RoomType: c.Query("roomType"),
		Username: c.Query("username"),
	}
	f.Year, _ = strconv.Atoi(c.Query("year"))
	f.Month, _ = strconv.Atoi(c.Query("month"))
	f.RoomNumber, _ = strconv.Atoi(c.Query("roomNumber"))
	if status, ok := models.ParseReservationStatus(c.Query("status")); ok {
		f.Status = status
	}
	return f
}

func querySort(c *gin.Context) stats.SortState {
	column, ok := stats.ParseSortColumn(c.Query("sort"))
	if !ok {
		return stats.SortState{}
	}
	return stats.SortState{Column: column, Ascending: c.Query("order") != "desc"}
}

// AdminReservations returns the filtered, sorted reservation table.
func AdminReservations(c *gin.Context) {
	rows, err := AdminSvc.Reservations(requestContext(c), admin.ReservationQuery{
		Filter: queryFilter(c),
		Sort:   querySort(c),
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AdminUpdateReservationDates moves a reservation to a new date range and
// returns the refreshed table.
func AdminUpdateReservationDates(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}
	var input struct {
		StartDate string `json:"startDate" binding:"required,dateonly"`
		EndDate   string `json:"endDate" binding:"required,dateonly"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	start, err := models.ParseDate(input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	end, err := models.ParseDate(input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	iv, err := models.NewDateInterval(start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	rows, err := AdminSvc.UpdateDates(requestContext(c), id, iv)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AdminUpdateReservationStatus changes a reservation's status and returns the
// refreshed table.
func AdminUpdateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	status, ok := models.ParseReservationStatus(input.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status", "details": input.Status})
		return
	}

	rows, err := AdminSvc.UpdateStatus(requestContext(c), id, status)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AdminDeleteReservation removes a reservation and returns the refreshed table.
func AdminDeleteReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	rows, err := AdminSvc.Delete(requestContext(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AdminReservationHistory returns one page of archived reservations.
func AdminReservationHistory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if size <= 0 {
		size = 10
	}

	result, err := AdminSvc.History(requestContext(c), page, size)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AdminStatistics returns per-month reservation counts broken down by room
// type, shaped for the bar chart on the statistics screen.
func AdminStatistics(c *gin.Context) {
	counts, err := AdminSvc.Statistics(requestContext(c), queryFilter(c))
	if err != nil {
		serviceError(c, err)
		return
	}

	series := make(map[string][]int, len(models.RoomTypes()))
	for _, rt := range models.RoomTypes() {
		series[string(rt)] = counts.Series(rt)
	}
	c.JSON(http.StatusOK, gin.H{
		"months": []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		"series": series,
	})
}
