package respond

import (
	"github.com/gin-gonic/gin"

	"easyhire-backend/internal/shared/telemetry"
)

// ErrorBody is the standardized error object returned to the client.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the wire shape of a failed request.
type ErrorResponse struct {
	Error string    `json:"error"`
	Body  ErrorBody `json:"detail"`
}

// Error sends a standardized error response and logs it server-side.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: message,
		Body: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}
