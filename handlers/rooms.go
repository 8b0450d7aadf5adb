package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roomly/models"
	"roomly/upstream"
)

// Rooms is assigned during startup wiring.
var Rooms upstream.RoomAPI

// ListRooms returns the full room catalogue.
func ListRooms(c *gin.Context) {
	rooms, err := Rooms.All(requestContext(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom returns a single room by ID.
func GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	room, err := Rooms.ByID(requestContext(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom adds a room to the catalogue.
func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, ok := models.ParseRoomType(room.RoomType); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room type", "details": room.RoomType})
		return
	}

	created, err := Rooms.Create(requestContext(c), room)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateRoom replaces a room's details.
func UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, ok := models.ParseRoomType(room.RoomType); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room type", "details": room.RoomType})
		return
	}

	if err := Rooms.Update(requestContext(c), id, room); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteRoom removes a room from the catalogue.
func DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	if err := Rooms.Delete(requestContext(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
