package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/i18n"
)

// LocalesResponse lists the loaded locales.
type LocalesResponse struct {
	Locales []string `json:"locales" example:"en,vi"`
	Default string   `json:"default" example:"en"`
	Current string   `json:"current" example:"vi"`
}

// TranslationResponse is one resolved key.
type TranslationResponse struct {
	Locale string `json:"locale" example:"vi"`
	Key    string `json:"key" example:"nav.home"`
	Value  any    `json:"value" swaggertype:"string"`
}

// ListLocales godoc
// @ID          listLocales
// @Summary     Loaded locales
// @Tags        I18n
// @Produce     json
// @Success     200  {object}  handlers.LocalesResponse
// @Router      /i18n/locales [get]
func (h *Handlers) ListLocales(c *gin.Context) {
	ok(c, http.StatusOK, LocalesResponse{
		Locales: h.I18n.Locales(),
		Default: h.I18n.Active(),
		Current: h.localizer(c).Locale(),
	})
}

// Translate godoc
// @ID          translate
// @Summary     Resolve a translation key
// @Description Objects and lists are returned as stored. String values are interpolated with the query parameters (named placeholders). Missing keys fall back to English.
// @Tags        I18n
// @Produce     json
// @Param       locale  path      string  true  "Locale"  example(vi)
// @Param       key     path      string  true  "Dotted key"  example(dashboard.title)
// @Success     200     {object}  handlers.TranslationResponse
// @Failure     404     {object}  handlers.ErrorResponse
// @Router      /i18n/translations/{locale}/{key} [get]
func (h *Handlers) Translate(c *gin.Context) {
	locale := c.Param("locale")
	key := strings.Trim(c.Param("key"), "/")
	if !h.I18n.Supports(locale) || key == "" {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "not_found")
		return
	}
	l := h.I18n.In(locale)
	var raw any
	if err := l.Decode(key, &raw); err != nil {
		if errors.Is(err, i18n.ErrKeyNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "not_found")
			return
		}
		failErr(c, err)
		return
	}
	value := raw
	if _, isString := raw.(string); isString {
		params := i18n.Params{}
		for name, vals := range c.Request.URL.Query() {
			if len(vals) > 0 {
				params[name] = vals[0]
			}
		}
		value = l.Resolve(key, i18n.Options{Params: params})
	}
	ok(c, http.StatusOK, TranslationResponse{Locale: locale, Key: key, Value: value})
}
