package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Walbert29/student-management/pkg/errors"
)

// Envelope represents the common response contract for single-entity endpoints.
type Envelope struct {
	Message string           `json:"message,omitempty"`
	Data    interface{}      `json:"data,omitempty"`
	Error   *appErrors.Error `json:"error,omitempty"`
}

// JSON sends a success response.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Data: data})
}

// Created responds with HTTP 201 Created and the standard creation message.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Message: "Data created successfully", Data: data})
}

// Deleted responds with HTTP 200 OK and the standard deletion message.
func Deleted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Message: "Data deleted successfully", Data: data})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// Detail sends a bare error body in the shape `{"detail": ...}`. The bulk
// endpoints reject malformed uploads with this body instead of the envelope.
func Detail(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"detail": appErr.Message})
}
