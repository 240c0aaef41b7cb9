package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Walbert29/student-management/internal/service"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
	"github.com/Walbert29/student-management/pkg/response"
)

// RoomHandler exposes room endpoints.
type RoomHandler struct {
	rooms *service.RoomService
}

// NewRoomHandler constructs RoomHandler.
func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// List godoc
// @Summary List rooms with their groups
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /room/list [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.rooms.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms)
}

// Roster godoc
// @Summary Download the student roster of a room
// @Tags Rooms
// @Produce application/pdf
// @Produce text/csv
// @Param room_id path int true "Room ID"
// @Param format query string false "Export format" Enums(pdf, csv) default(pdf)
// @Success 200 {file} file
// @Router /room/{room_id}/roster [get]
func (h *RoomHandler) Roster(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadInput, "Invalid room ID"))
		return
	}

	roster, err := h.rooms.Roster(c.Request.Context(), id, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", roster.Filename))
	c.Data(http.StatusOK, roster.ContentType, roster.Data)
}
