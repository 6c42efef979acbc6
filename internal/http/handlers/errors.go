package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/assessment"
	"github.com/tbourn/go-wellness-backend/internal/assistant"
	"github.com/tbourn/go-wellness-backend/internal/auth"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/services"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// Error codes. Clients branch on these; messages are for display only.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeInternal         = "internal_error"

	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeReservedEmail      = "reserved_email"
	ErrCodeEmailExists        = "email_exists"
	ErrCodeMissingCredentials = "missing_credentials"
	ErrCodeEmptyContent       = "empty_content"
	ErrCodeTooLong            = "too_long"
	ErrCodeInvalidVideo       = "invalid_video"
	ErrCodeProtectedAccount   = "protected_account"
	ErrCodeIncompleteAnswers  = "incomplete_answers"
	ErrCodeInvalidAnswer      = "invalid_answer"
	ErrCodeConversationClosed = "conversation_closed"
	ErrCodeStorageFailed      = "storage_failed"
	ErrCodeAssistantConfig    = "assistant_unconfigured"
	ErrCodeAssistantFailed    = "assistant_failed"
)

type errorMapping struct {
	err    error
	status int
	code   string
	msgKey string
}

// errorTable is matched in order with errors.Is.
var errorTable = []errorMapping{
	{auth.ErrInvalidCredentials, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid_credentials"},
	{auth.ErrReservedEmail, http.StatusConflict, ErrCodeReservedEmail, "reserved_email"},
	{auth.ErrEmailAlreadyExists, http.StatusConflict, ErrCodeEmailExists, "email_exists"},
	{auth.ErrMissingCredentials, http.StatusBadRequest, ErrCodeMissingCredentials, "missing_credentials"},
	{auth.ErrInvalidToken, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized"},
	{services.ErrUnauthorized, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized"},
	{services.ErrForbidden, http.StatusForbidden, ErrCodeForbidden, "forbidden"},
	{services.ErrProtectedAccount, http.StatusForbidden, ErrCodeProtectedAccount, "protected_account"},
	{services.ErrEmptyContent, http.StatusBadRequest, ErrCodeEmptyContent, "empty_content"},
	{services.ErrTooLong, http.StatusBadRequest, ErrCodeTooLong, "invalid_input"},
	{services.ErrInvalidVideo, http.StatusBadRequest, ErrCodeInvalidVideo, "invalid_video"},
	{services.ErrPostNotFound, http.StatusNotFound, ErrCodeNotFound, "not_found"},
	{services.ErrCommentNotFound, http.StatusNotFound, ErrCodeNotFound, "not_found"},
	{services.ErrChallengeNotFound, http.StatusNotFound, ErrCodeNotFound, "not_found"},
	{services.ErrUserNotFound, http.StatusNotFound, ErrCodeNotFound, "not_found"},
	{services.ErrItemNotFound, http.StatusNotFound, ErrCodeNotFound, "not_found"},
	{repo.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, "not_found"},
	{services.ErrConversationClosed, http.StatusConflict, ErrCodeConversationClosed, "conversation_closed"},
	{assessment.ErrIncompleteAnswers, http.StatusBadRequest, ErrCodeIncompleteAnswers, "incomplete_answers"},
	{assessment.ErrInvalidAnswer, http.StatusBadRequest, ErrCodeInvalidAnswer, "invalid_input"},
	{store.ErrStorageWriteFailed, http.StatusInsufficientStorage, ErrCodeStorageFailed, "storage_failed"},
	{assistant.ErrAPIKeyMissing, http.StatusServiceUnavailable, ErrCodeAssistantConfig, "assistant_unconfigured"},
	{assistant.ErrUpstream, http.StatusBadGateway, ErrCodeAssistantFailed, "assistant_failed"},
}

// classify returns the mapping for err, defaulting to a 500.
func classify(err error) errorMapping {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return m
		}
	}
	return errorMapping{err: err, status: http.StatusInternalServerError, code: ErrCodeInternal, msgKey: "internal"}
}

// failErr answers with the mapping for err. The error is attached to the
// Gin context so the access log records it.
func failErr(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) {
		// client went away; nothing useful to send
		c.Abort()
		return
	}
	_ = c.Error(err)
	m := classify(err)
	fail(c, m.status, m.code, m.msgKey)
}

func badRequest(c *gin.Context) {
	fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid_input")
}
