package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/tbourn/go-wellness-backend/internal/domain"
)

func TestAdmin_UsersAndDelete(t *testing.T) {
	e := newEnv(t)
	bob := e.signup("bob@e.com")
	alice := e.signup("alice@e.com")
	admin := e.adminToken()

	expectError(t, e.do(http.MethodGet, "/admin/users", nil, alice), http.StatusForbidden, "forbidden")

	var users []domain.User
	decode(t, e.do(http.MethodGet, "/admin/users", nil, admin), &users)
	if len(users) != 2 || users[0].Email != "alice@e.com" {
		t.Fatalf("users: %+v", users)
	}

	expectError(t, e.do(http.MethodDelete, "/admin/users/"+url.PathEscape(testAdminEmail), nil, admin),
		http.StatusForbidden, ErrCodeProtectedAccount)
	expectError(t, e.do(http.MethodDelete, "/admin/users/nobody@e.com", nil, admin), http.StatusNotFound, ErrCodeNotFound)
	if w := e.do(http.MethodDelete, "/admin/users/bob@e.com", nil, admin); w.Code != http.StatusNoContent {
		t.Fatalf("delete bob: %d %s", w.Code, w.Body.String())
	}

	// bob can no longer sign in
	expectError(t, e.do(http.MethodPost, "/auth/login", CredentialsRequest{Email: "bob@e.com", Password: "pw"}, ""),
		http.StatusUnauthorized, ErrCodeInvalidCredentials)
	// and the token issued before the deletion is refused
	expectError(t, e.do(http.MethodGet, "/journal", nil, bob), http.StatusUnauthorized, ErrCodeUnauthorized)
}

func TestAdmin_ChatSessions(t *testing.T) {
	e := newEnv(t)
	alice := e.signup("alice@e.com")
	admin := e.adminToken()

	var conv ConversationResponse
	decode(t, e.do(http.MethodPost, "/chat/conversations", nil, alice), &conv)
	e.do(http.MethodPost, "/chat/conversations/"+conv.ID+"/messages", ChatMessageRequest{Content: "hi"}, alice)
	if w := e.do(http.MethodDelete, "/chat/conversations/"+conv.ID, nil, alice); w.Code != http.StatusNoContent {
		t.Fatalf("close: %d", w.Code)
	}

	var page Page[domain.ChatSession]
	decode(t, e.do(http.MethodGet, "/admin/chat-sessions", nil, admin), &page)
	if len(page.Items) != 1 || page.Items[0].UserEmail != "alice@e.com" || len(page.Items[0].Messages) != 2 {
		t.Fatalf("sessions: %+v", page.Items)
	}
}
