// Standard response envelopes.
//
// Every endpoint answers failures with the same JSON shape so webhook
// providers and dashboard clients can branch on a stable `code` without
// parsing prose. 5xx responses additionally hit the request-scoped log.
//
// Example:
//
//	HTTP/1.1 401 Unauthorized
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "invalid_signature",
//	  "message": "invalid signature"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-webhook-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints.
// It is also the shape documented through the Swagger annotations.
type ErrorResponse struct {
	// Correlates server logs and client errors (echoed X-Request-ID)
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"invalid_signature"`
	// Human-readable message (safe to return to callers)
	Message string `json:"message" example:"invalid signature"`
}

// fail aborts the request with the standard error envelope. Server-side
// failures (>=500) are logged with the request-scoped logger so the envelope
// itself can stay terse.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail exposes fail to the router for NoRoute/NoMethod fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
