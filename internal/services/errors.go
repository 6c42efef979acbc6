// Package services implements the application operations on top of the
// repositories: journaling, daily challenges, assessments, the forum, the
// curated catalog, user administration, dashboard statistics and assistant
// conversations.
//
// Errors from lower layers are passed through unchanged so callers can match
// them with errors.Is: auth.ErrInvalidCredentials and friends,
// assessment.ErrIncompleteAnswers, store.ErrStorageWriteFailed and
// assistant.ErrAPIKeyMissing. The values below cover the rest. Mapping to
// user-facing messages or HTTP statuses is the caller's job.
package services

import "errors"

var (
	// ErrUnauthorized is returned when an operation needs a signed-in user.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned when the actor may not touch the target.
	ErrForbidden = errors.New("not allowed")

	// ErrEmptyContent is returned for blank titles, bodies and comments.
	ErrEmptyContent = errors.New("content is empty")

	// ErrTooLong is returned when text exceeds the configured limit.
	ErrTooLong = errors.New("content too long")

	// ErrInvalidVideo is returned when no YouTube id can be derived.
	ErrInvalidVideo = errors.New("a valid YouTube URL or video ID is required")

	// ErrProtectedAccount is returned when deleting the administrator or
	// oneself.
	ErrProtectedAccount = errors.New("account cannot be deleted")

	ErrPostNotFound      = errors.New("post not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrItemNotFound      = errors.New("item not found")

	// ErrConversationClosed is returned when sending on a closed conversation.
	ErrConversationClosed = errors.New("conversation closed")
)
