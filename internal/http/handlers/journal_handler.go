package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JournalEntryRequest is the payload for a new journal entry.
type JournalEntryRequest struct {
	Content string `json:"content" example:"Slept well, walked 5km."`
}

// ListJournal godoc
// @ID          listJournal
// @Summary     List journal entries (newest first, paginated)
// @Tags        Journal
// @Produce     json
// @Security    BearerAuth
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200  {object}  handlers.Page[domain.JournalEntry]
// @Failure     401  {object}  handlers.ErrorResponse
// @Router      /journal [get]
func (h *Handlers) ListJournal(c *gin.Context) {
	entries := h.Journal.List(c.Request.Context(), actor(c))
	ok(c, http.StatusOK, paginate(c, entries))
}

// AddJournalEntry godoc
// @ID          addJournalEntry
// @Summary     Add a journal entry
// @Tags        Journal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.JournalEntryRequest  true  "Entry"
// @Success     201   {object}  domain.JournalEntry
// @Failure     400   {object}  handlers.ErrorResponse  "Empty or too long"
// @Failure     507   {object}  handlers.ErrorResponse  "Storage full"
// @Router      /journal [post]
func (h *Handlers) AddJournalEntry(c *gin.Context) {
	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	e, err := h.Journal.Add(c.Request.Context(), actor(c), req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, e)
}
