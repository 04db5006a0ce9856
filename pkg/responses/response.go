package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents the error JSON body shared by every endpoint.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// SendJSON sends data as the raw JSON body.
func SendJSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendEmpty sends a status with no body.
func SendEmpty(c *gin.Context, statusCode int) {
	c.Status(statusCode)
	c.Writer.WriteHeaderNow()
}

// SendErrors aborts the request with one entry per message.
func SendErrors(c *gin.Context, statusCode int, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Errors: messages})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, messages ...string) {
	if len(messages) == 0 {
		messages = []string{"Invalid request payload or parameters"}
	}
	SendErrors(c, http.StatusBadRequest, messages...)
}

// NotFound sends a 404 for unknown routes.
func NotFound(c *gin.Context) {
	SendErrors(c, http.StatusNotFound, "Resource "+c.Request.URL.Path+" not found")
}

// MethodNotAllowed sends a 405 for known routes hit with the wrong method.
func MethodNotAllowed(c *gin.Context) {
	SendErrors(c, http.StatusMethodNotAllowed, "Method "+c.Request.Method+" not allowed")
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendErrors(c, http.StatusInternalServerError, message)
}
