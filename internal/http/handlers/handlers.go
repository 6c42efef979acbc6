package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/http/middleware"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
	"github.com/tbourn/go-wellness-backend/internal/services"
	"github.com/tbourn/go-wellness-backend/internal/utils"
)

// Handlers groups the HTTP endpoints. Every field must be set; the router
// wires them from one composition root.
type Handlers struct {
	Accounts    *services.AccountService
	Journal     *services.JournalService
	Challenges  *services.ChallengeService
	Assessments *services.AssessmentService
	Forum       *services.ForumService
	Catalog     *services.CatalogService
	Admin       *services.AdminService
	Dashboard   *services.DashboardService
	Chat        *services.ChatService
	I18n        *i18n.Resolver
}

// actor is the signed-in user, or nil.
func actor(c *gin.Context) *domain.User { return middleware.UserFrom(c) }

// localizer returns the request localizer, or the fallback locale when the
// Locale middleware did not run.
func (h *Handlers) localizer(c *gin.Context) i18n.Localizer {
	if l, ok := middleware.LocalizerFrom(c); ok {
		return l
	}
	return h.I18n.In(i18n.FallbackLocale)
}

// Page is a list response with pagination metadata.
type Page[T any] struct {
	Items      []T              `json:"items"`
	Pagination utils.Pagination `json:"pagination"`
}

// paginate applies the page and page_size query parameters to items.
func paginate[T any](c *gin.Context, items []T) Page[T] {
	page, size := utils.ClampPage(c.Query("page"), c.Query("page_size"))
	out, p := utils.Paginate(items, page, size)
	return Page[T]{Items: out, Pagination: p}
}
