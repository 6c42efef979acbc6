// Package handlers implements the HTTP endpoints of the public API on top of
// the application services.
//
// Every failure is answered with ErrorResponse: a stable machine-readable
// code plus a message translated into the request locale (errors.* keys).
// Success bodies are the domain values themselves, wrapped in a small
// envelope only when pagination metadata is attached.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go)
	Code string `json:"code" example:"not_found"`
	// Translated message, safe to show to users
	Message string `json:"message" example:"The requested item was not found."`
}

// fail aborts with the error envelope. msgKey names an errors.* translation;
// the code doubles as the message when no localizer is attached. 5xx
// responses are logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msgKey string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   middleware.Translate(c, "errors."+msgKey, code),
	}
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		ev := lg.Error().Int("status", status).Str("code", code)
		if len(c.Errors) > 0 {
			ev = ev.Str("cause", c.Errors.Last().Error())
		}
		ev.Msg("api error")
	}
	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail for the router's fallbacks.
func Fail(c *gin.Context, status int, code, msgKey string) { fail(c, status, code, msgKey) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
