package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Walbert29/student-management/internal/service"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
	"github.com/Walbert29/student-management/pkg/response"
)

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students    *service.StudentService
	maxFileSize int64
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService, maxFileSize int64) *StudentHandler {
	return &StudentHandler{students: students, maxFileSize: maxFileSize}
}

// BulkUpdate godoc
// @Summary Update students and guardians in bulk from a spreadsheet
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook with one student/guardian update per row"
// @Success 207 {object} dto.BulkReport
// @Failure 400 {object} map[string]string
// @Router /student/update/massive [put]
func (h *StudentHandler) BulkUpdate(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Detail(c, appErrors.Clone(appErrors.ErrBadInput, "Missing file upload"))
		return
	}
	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		response.Detail(c, appErrors.New(appErrors.ErrBadInput.Code, http.StatusRequestEntityTooLarge, "Uploaded file exceeds the size limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Detail(c, appErrors.Wrap(err, appErrors.ErrBadInput.Code, http.StatusBadRequest, "Unable to open uploaded file"))
		return
	}
	defer file.Close()

	report, err := h.students.BulkUpdate(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		response.Detail(c, err)
		return
	}
	c.JSON(http.StatusMultiStatus, report)
}

// ListByGroup godoc
// @Summary List students enrolled in any room of a group
// @Tags Students
// @Produce json
// @Param group_id path int true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /student/group/{group_id} [get]
func (h *StudentHandler) ListByGroup(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadInput, "Invalid group ID"))
		return
	}

	students, err := h.students.ListByGroup(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// ListByRoom godoc
// @Summary List students enrolled in a room
// @Tags Students
// @Produce json
// @Param room_id path int true "Room ID"
// @Success 200 {object} response.Envelope
// @Router /student/room/{room_id} [get]
func (h *StudentHandler) ListByRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadInput, "Invalid room ID"))
		return
	}

	students, err := h.students.ListByRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}
