// Assistant chat HTTP handlers.
//
//   - POST   /chat/conversations               (begin)
//   - GET    /chat/conversations/{id}          (transcript)
//   - POST   /chat/conversations/{id}/messages (send; SSE when requested)
//   - DELETE /chat/conversations/{id}          (close and log)
//
// Conversations live in memory on this instance. Anonymous conversations are
// addressable by anyone holding the id and are never logged.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/http/middleware"
	"github.com/tbourn/go-wellness-backend/internal/services"
)

// ConversationResponse is a conversation and its transcript so far.
type ConversationResponse struct {
	ID       string               `json:"id" example:"5b7c1f9e-8a53-4bb0-9d0c-2f1e6a7d3c11"`
	Messages []domain.ChatMessage `json:"messages"`
}

// ChatMessageRequest is a user prompt.
type ChatMessageRequest struct {
	Content string `json:"content" example:"I can't sleep before exams. Any tips?"`
}

// ChatReply is the model's completed turn.
type ChatReply struct {
	ConversationID string             `json:"conversationId"`
	Message        domain.ChatMessage `json:"message"`
}

// ChatChunk is one streamed fragment of the reply.
type ChatChunk struct {
	Text string `json:"text"`
}

func conversationResponse(conv *services.Conversation) ConversationResponse {
	return ConversationResponse{ID: conv.ID(), Messages: conv.Messages()}
}

// BeginConversation godoc
// @ID          beginConversation
// @Summary     Start an assistant conversation
// @Tags        Chat
// @Produce     json
// @Success     201  {object}  handlers.ConversationResponse
// @Router      /chat/conversations [post]
func (h *Handlers) BeginConversation(c *gin.Context) {
	conv := h.Chat.Begin(actor(c))
	ok(c, http.StatusCreated, conversationResponse(conv))
}

// GetConversation godoc
// @ID          getConversation
// @Summary     Conversation transcript
// @Tags        Chat
// @Produce     json
// @Param       id   path      string  true  "Conversation ID"
// @Success     200  {object}  handlers.ConversationResponse
// @Failure     403  {object}  handlers.ErrorResponse
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /chat/conversations/{id} [get]
func (h *Handlers) GetConversation(c *gin.Context) {
	conv, err := h.Chat.Lookup(actor(c), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, conversationResponse(conv))
}

// CloseConversation godoc
// @ID          closeConversation
// @Summary     End a conversation
// @Description Signed-in conversations with a reply are logged for administrators.
// @Tags        Chat
// @Param       id  path  string  true  "Conversation ID"
// @Success     204
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /chat/conversations/{id} [delete]
func (h *Handlers) CloseConversation(c *gin.Context) {
	conv, err := h.Chat.Lookup(actor(c), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	if err := conv.Close(c.Request.Context()); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// SendChatMessage godoc
// @ID          sendChatMessage
// @Summary     Send a prompt to the assistant
// @Description With "Accept: text/event-stream" the reply streams as "chunk" events followed by "done" (or "error" then "done"). Otherwise the completed reply is returned as JSON.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Produce     text/event-stream
// @Param       id    path      string                       true  "Conversation ID"
// @Param       body  body      handlers.ChatMessageRequest  true  "Prompt"
// @Success     200   {object}  handlers.ChatReply
// @Failure     400   {object}  handlers.ErrorResponse  "Empty or too long"
// @Failure     502   {object}  handlers.ErrorResponse  "Assistant failed"
// @Failure     503   {object}  handlers.ErrorResponse  "Assistant not configured"
// @Router      /chat/conversations/{id}/messages [post]
func (h *Handlers) SendChatMessage(c *gin.Context) {
	conv, err := h.Chat.Lookup(actor(c), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	ctx := c.Request.Context()

	if !wantsStream(c) {
		msg, err := conv.Send(ctx, req.Content, nil)
		if err != nil {
			failErr(c, err)
			return
		}
		ok(c, http.StatusOK, ChatReply{ConversationID: conv.ID(), Message: msg})
		return
	}

	// The stream opens on the first chunk so failures before any output
	// still get a proper status code.
	streaming := false
	open := func() {
		if streaming {
			return
		}
		streaming = true
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")
		c.Header("Content-Type", "text/event-stream")
		c.Status(http.StatusOK)
	}
	msg, err := conv.Send(ctx, req.Content, func(chunk string) error {
		open()
		c.SSEvent("chunk", ChatChunk{Text: chunk})
		c.Writer.Flush()
		return ctx.Err()
	})
	if err != nil && !streaming {
		failErr(c, err)
		return
	}
	open()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		_ = c.Error(err)
		m := classify(err)
		c.SSEvent("error", ErrorResponse{
			RequestID: c.Writer.Header().Get("X-Request-ID"),
			Code:      m.code,
			Message:   middleware.Translate(c, "errors."+m.msgKey, m.code),
		})
	}
	c.SSEvent("done", ChatReply{ConversationID: conv.ID(), Message: msg})
	c.Writer.Flush()
}

func wantsStream(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}
