package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/tbourn/go-wellness-backend/internal/assistant"
	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/services"
)

func begin(t *testing.T, e *testEnv, token string) string {
	t.Helper()
	var conv ConversationResponse
	w := e.do(http.MethodPost, "/chat/conversations", nil, token)
	decode(t, w, &conv)
	if w.Code != http.StatusCreated || conv.ID == "" || len(conv.Messages) != 0 {
		t.Fatalf("begin: %d %+v", w.Code, conv)
	}
	return conv.ID
}

func TestChat_SendJSON(t *testing.T) {
	e := newEnv(t)
	id := begin(t, e, "")

	var reply ChatReply
	w := e.do(http.MethodPost, "/chat/conversations/"+id+"/messages", ChatMessageRequest{Content: "hi"}, "")
	decode(t, w, &reply)
	if w.Code != http.StatusOK || reply.Message.Text != "Hello there" || reply.Message.Role != domain.RoleModel {
		t.Fatalf("reply: %d %+v", w.Code, reply)
	}

	var conv ConversationResponse
	decode(t, e.do(http.MethodGet, "/chat/conversations/"+id, nil, ""), &conv)
	if len(conv.Messages) != 2 || conv.Messages[0].Text != "hi" {
		t.Fatalf("transcript: %+v", conv.Messages)
	}

	expectError(t, e.do(http.MethodPost, "/chat/conversations/"+id+"/messages", ChatMessageRequest{Content: " "}, ""),
		http.StatusBadRequest, ErrCodeEmptyContent)
	expectError(t, e.do(http.MethodPost, "/chat/conversations/nope/messages", ChatMessageRequest{Content: "x"}, ""),
		http.StatusNotFound, ErrCodeNotFound)
}

func TestChat_SendStream(t *testing.T) {
	e := newEnv(t)
	id := begin(t, e, "")

	w := e.do(http.MethodPost, "/chat/conversations/"+id+"/messages", ChatMessageRequest{Content: "hi"}, "",
		"Accept", "text/event-stream")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/event-stream") {
		t.Fatalf("stream: %d %v", w.Code, w.Header())
	}
	body := w.Body.String()
	for _, want := range []string{"event:chunk", `"text":"Hello"`, `"text":" there"`, "event:done", `"text":"Hello there"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("stream body missing %q:\n%s", want, body)
		}
	}
	if strings.Index(body, "event:chunk") > strings.Index(body, "event:done") {
		t.Fatalf("done before chunks:\n%s", body)
	}
}

func TestChat_StreamFailureAfterChunks(t *testing.T) {
	e := newEnv(t)
	e.provider.chunks = []string{"par"}
	e.provider.err = errors.New("boom")
	id := begin(t, e, "")

	w := e.do(http.MethodPost, "/chat/conversations/"+id+"/messages", ChatMessageRequest{Content: "hi"}, "",
		"Accept", "text/event-stream")
	body := w.Body.String()
	if w.Code != http.StatusOK || !strings.Contains(body, "event:error") || !strings.Contains(body, ErrCodeAssistantFailed) {
		t.Fatalf("stream error: %d\n%s", w.Code, body)
	}
	if !strings.Contains(body, services.FailureReply) {
		t.Fatalf("done event should carry the apology:\n%s", body)
	}
}

func TestChat_FailuresBeforeOutput(t *testing.T) {
	e := newEnv(t)
	e.provider.chunks = nil

	e.provider.err = assistant.ErrAPIKeyMissing
	id := begin(t, e, "")
	er := expectError(t, e.do(http.MethodPost, "/chat/conversations/"+id+"/messages", ChatMessageRequest{Content: "hi"}, "",
		"Accept", "text/event-stream"), http.StatusServiceUnavailable, ErrCodeAssistantConfig)
	if !strings.Contains(er.Message, "API key") {
		t.Fatalf("message: %q", er.Message)
	}

	e.provider.err = errors.New("upstream 500")
	expectError(t, e.do(http.MethodPost, "/chat/conversations/"+id+"/messages", ChatMessageRequest{Content: "hi"}, ""),
		http.StatusBadGateway, ErrCodeAssistantFailed)

	// the failure turn is kept; the missing-key turn is not
	var conv ConversationResponse
	decode(t, e.do(http.MethodGet, "/chat/conversations/"+id, nil, ""), &conv)
	if len(conv.Messages) != 3 || conv.Messages[2].Text != services.FailureReply {
		t.Fatalf("transcript: %+v", conv.Messages)
	}
}

func TestChat_OwnershipAndClose(t *testing.T) {
	e := newEnv(t)
	alice := e.signup("alice@e.com")
	bob := e.signup("bob@e.com")
	id := begin(t, e, alice)

	expectError(t, e.do(http.MethodGet, "/chat/conversations/"+id, nil, bob), http.StatusForbidden, ErrCodeForbidden)
	expectError(t, e.do(http.MethodGet, "/chat/conversations/"+id, nil, ""), http.StatusForbidden, ErrCodeForbidden)

	if w := e.do(http.MethodDelete, "/chat/conversations/"+id, nil, alice); w.Code != http.StatusNoContent {
		t.Fatalf("close: %d", w.Code)
	}
	expectError(t, e.do(http.MethodGet, "/chat/conversations/"+id, nil, alice), http.StatusNotFound, ErrCodeNotFound)
}
