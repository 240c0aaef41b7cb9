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

// TemplateHandler exposes the spreadsheet template catalog.
type TemplateHandler struct {
	templates *service.TemplateService
}

// NewTemplateHandler constructs TemplateHandler.
func NewTemplateHandler(templates *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// List godoc
// @Summary List downloadable spreadsheet templates
// @Tags Templates
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /template/list/templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.templates.List())
}

// Download godoc
// @Summary Download a spreadsheet template
// @Tags Templates
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param template_id path int true "Template ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /template/template/{template_id} [get]
func (h *TemplateHandler) Download(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("template_id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadInput, "Invalid template ID"))
		return
	}

	tpl, err := h.templates.Generate(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", tpl.Filename))
	c.Data(http.StatusOK, tpl.ContentType, tpl.Data)
}
