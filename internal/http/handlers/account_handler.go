// Account HTTP handlers.
//
//   - POST /auth/signup  (register and sign in)
//   - POST /auth/login   (sign in)
//   - POST /auth/logout  (no-op; tokens are stateless)
//   - GET  /me           (current user)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/http/middleware"
)

// CredentialsRequest is the payload of login and signup.
type CredentialsRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"s3cret"`
}

// Signup godoc
// @ID          signup
// @Summary     Create an account
// @Description Registers the email and returns a signed-in session. The administrator address is reserved.
// @Tags        Account
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CredentialsRequest  true  "Credentials"
// @Success     201   {object}  services.Session
// @Failure     400   {object}  handlers.ErrorResponse  "Missing credentials"
// @Failure     409   {object}  handlers.ErrorResponse  "Email taken or reserved"
// @Router      /auth/signup [post]
func (h *Handlers) Signup(c *gin.Context) {
	middleware.NoStore(c)
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	sess, err := h.Accounts.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, sess)
}

// Login godoc
// @ID          login
// @Summary     Sign in
// @Tags        Account
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CredentialsRequest  true  "Credentials"
// @Success     200   {object}  services.Session
// @Failure     400   {object}  handlers.ErrorResponse  "Missing credentials"
// @Failure     401   {object}  handlers.ErrorResponse  "Invalid credentials"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	middleware.NoStore(c)
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	sess, err := h.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, sess)
}

// Logout godoc
// @ID          logout
// @Summary     Sign out
// @Description Tokens are stateless; clients discard theirs. Always 204.
// @Tags        Account
// @Success     204
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	noContent(c)
}

// Me godoc
// @ID          me
// @Summary     Current user
// @Tags        Account
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  domain.User
// @Failure     401  {object}  handlers.ErrorResponse
// @Router      /me [get]
func (h *Handlers) Me(c *gin.Context) {
	middleware.NoStore(c)
	u := actor(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized")
		return
	}
	ok(c, http.StatusOK, u)
}
