package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/domain"
)

// TokenVerifier resolves a bearer token to its user.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.User, error)
}

// Authenticate reads an optional "Authorization: Bearer <token>" header.
// Without the header the request continues anonymously; a malformed or
// invalid token is rejected with 401 so clients notice expired sessions.
func Authenticate(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := strings.TrimSpace(c.GetHeader("Authorization"))
		if h == "" {
			c.Next()
			return
		}
		scheme, token, found := strings.Cut(h, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			Abort(c, http.StatusUnauthorized, "unauthorized", "unauthorized", "sign in required")
			return
		}
		u, err := v.Verify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			Abort(c, http.StatusUnauthorized, "unauthorized", "unauthorized", "sign in required")
			return
		}
		c.Set(ctxUser, &u)
		c.Set(ctxUserID, u.ID)
		c.Next()
	}
}

// RequireUser rejects anonymous requests.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			Abort(c, http.StatusUnauthorized, "unauthorized", "unauthorized", "sign in required")
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous and non-admin requests.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := UserFrom(c)
		switch {
		case u == nil:
			Abort(c, http.StatusUnauthorized, "unauthorized", "unauthorized", "sign in required")
		case !u.IsAdmin:
			Abort(c, http.StatusForbidden, "forbidden", "forbidden", "administrator only")
		default:
			c.Next()
		}
	}
}
