package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/akio-byte/aki-eduro/internal/shared/telemetry"
)

// ErrorResponse is the failure envelope every kiosk endpoint returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Error logs and sends a standardized failure response.
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
		Success: false,
		Error:   message,
	})
}
