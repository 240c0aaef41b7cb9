package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Walbert29/student-management/internal/service"
	appErrors "github.com/Walbert29/student-management/pkg/errors"
	"github.com/Walbert29/student-management/pkg/response"
)

// EnrollmentHandler exposes the bulk enrollment pipeline.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
	maxFileSize int64
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService, maxFileSize int64) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, maxFileSize: maxFileSize}
}

// BulkEnroll godoc
// @Summary Enroll students in bulk from a spreadsheet
// @Tags Enrollments
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook with one student enrollment per row"
// @Success 207 {object} dto.BulkReport
// @Failure 400 {object} map[string]string
// @Router /enrollment/students [post]
func (h *EnrollmentHandler) BulkEnroll(c *gin.Context) {
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

	report, err := h.enrollments.BulkEnroll(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		response.Detail(c, err)
		return
	}
	c.JSON(http.StatusMultiStatus, report)
}

// Unenroll godoc
// @Summary Delete an enrollment
// @Tags Enrollments
// @Produce json
// @Param enrollment_id path int true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Router /enrollment/{enrollment_id} [delete]
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("enrollment_id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadInput, "Invalid enrollment ID"))
		return
	}

	enrollment, err := h.enrollments.Unenroll(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c, enrollment)
}
