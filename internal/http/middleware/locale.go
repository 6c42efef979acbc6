package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/i18n"
)

// LocaleQuery overrides Accept-Language when present (e.g. ?lang=vi).
const LocaleQuery = "lang"

// Locale picks the response language from ?lang or Accept-Language, binds a
// localizer to the request and sets Content-Language.
func Locale(r *i18n.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := ""
		if q := c.Query(LocaleQuery); q != "" && r.Supports(q) {
			loc = q
		} else {
			loc = r.Negotiate(c.GetHeader("Accept-Language"))
		}
		c.Set(ctxLocalizer, r.In(loc))
		c.Header("Content-Language", loc)
		c.Next()
	}
}
