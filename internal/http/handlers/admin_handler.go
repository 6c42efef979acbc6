package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// ListUsers godoc
// @ID          listUsers
// @Summary     Registered users, sorted by email
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.User
// @Failure     403  {object}  handlers.ErrorResponse
// @Router      /admin/users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.Admin.Users(c.Request.Context(), actor(c))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, users)
}

// DeleteUser godoc
// @ID          deleteUser
// @Summary     Delete a user account
// @Description The caller's own account and the administrator account are protected.
// @Tags        Admin
// @Security    BearerAuth
// @Param       email  path  string  true  "User email"
// @Success     204
// @Failure     403  {object}  handlers.ErrorResponse  "Protected account"
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /admin/users/{email} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		badRequest(c)
		return
	}
	if err := h.Admin.DeleteUser(c.Request.Context(), actor(c), email); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// ListChatSessions godoc
// @ID          listChatSessions
// @Summary     Logged assistant conversations, newest first
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.Page[domain.ChatSession]
// @Router      /admin/chat-sessions [get]
func (h *Handlers) ListChatSessions(c *gin.Context) {
	sessions, err := h.Admin.ChatSessions(c.Request.Context(), actor(c))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, paginate(c, sessions))
}

// GetDashboard godoc
// @ID          dashboard
// @Summary     Progress summary for the current user
// @Tags        Dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  services.Dashboard
// @Router      /dashboard [get]
func (h *Handlers) GetDashboard(c *gin.Context) {
	ok(c, http.StatusOK, h.Dashboard.Summary(c.Request.Context(), actor(c)))
}
