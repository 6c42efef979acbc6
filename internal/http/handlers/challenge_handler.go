package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// TodayChallenge godoc
// @ID          todayChallenge
// @Summary     Today's challenge
// @Description Returns the challenge assigned for the current UTC day, creating it on first access in the request locale.
// @Tags        Challenges
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  domain.DailyChallenge
// @Failure     401  {object}  handlers.ErrorResponse
// @Router      /challenges/today [get]
func (h *Handlers) TodayChallenge(c *gin.Context) {
	ch, err := h.Challenges.Today(c.Request.Context(), actor(c), h.localizer(c).Locale())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ch)
}

// ChallengeHistory godoc
// @ID          challengeHistory
// @Summary     All assigned challenges, oldest first
// @Tags        Challenges
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.DailyChallenge
// @Failure     401  {object}  handlers.ErrorResponse
// @Router      /challenges [get]
func (h *Handlers) ChallengeHistory(c *gin.Context) {
	ok(c, http.StatusOK, h.Challenges.History(c.Request.Context(), actor(c)))
}

// ToggleChallenge godoc
// @ID          toggleChallenge
// @Summary     Flip a challenge's completion flag
// @Tags        Challenges
// @Produce     json
// @Security    BearerAuth
// @Param       id   path      int  true  "Challenge ID"
// @Success     200  {object}  domain.DailyChallenge
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /challenges/{id}/toggle [post]
func (h *Handlers) ToggleChallenge(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}
	ch, err := h.Challenges.Toggle(c.Request.Context(), actor(c), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ch)
}
