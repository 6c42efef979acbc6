// Package middleware contains the Gin middleware shared by every route:
// correlation ids, access logging with PII redaction, panic recovery,
// Prometheus metrics, rate limiting, security headers, bearer-token
// authentication and locale negotiation.
//
// Middleware that rejects a request writes the same error envelope as the
// handlers package: {"request_id", "code", "message"}, with the message
// translated into the negotiated locale when Locale() ran earlier.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
)

// Gin context keys.
const (
	ctxUser      = "user"
	ctxUserID    = "userID"
	ctxLocalizer = "localizer"
	ctxLogger    = "logger"
)

// UserFrom returns the authenticated user, or nil for anonymous requests.
func UserFrom(c *gin.Context) *domain.User {
	if v, ok := c.Get(ctxUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

// LocalizerFrom returns the request's localizer. ok is false when Locale()
// has not run.
func LocalizerFrom(c *gin.Context) (i18n.Localizer, bool) {
	if v, ok := c.Get(ctxLocalizer); ok {
		if l, ok := v.(i18n.Localizer); ok {
			return l, true
		}
	}
	return i18n.Localizer{}, false
}

// Translate resolves key in the request locale, or returns fallback when no
// localizer is attached.
func Translate(c *gin.Context, key, fallback string) string {
	if l, ok := LocalizerFrom(c); ok {
		return l.T(key)
	}
	return fallback
}

// Abort stops the chain with the standard error envelope. The message is the
// translation of errors.<msgKey>, falling back to fallback.
func Abort(c *gin.Context, status int, code, msgKey, fallback string) {
	c.AbortWithStatusJSON(status, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       code,
		"message":    Translate(c, "errors."+msgKey, fallback),
	})
}
