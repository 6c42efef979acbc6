package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-wellness-backend/internal/assistant"
	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/observability"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// FailureReply is appended as the model's turn when the assistant fails for
// any reason other than missing configuration.
const FailureReply = "Sorry, something went wrong. Please try again."

// ChatService runs assistant conversations. Each Conversation is an explicit
// object with its own lifecycle; open conversations are also tracked by id so
// stateless transports can address them across requests.
type ChatService struct {
	Store    *store.Store
	Provider assistant.Provider
	Now      Clock

	MaxPromptRunes int

	mu   sync.Mutex
	open map[string]*Conversation
}

// NewChatService returns a service using p for replies.
func NewChatService(s *store.Store, p assistant.Provider) *ChatService {
	return &ChatService{Store: s, Provider: p, MaxPromptRunes: 4000, open: map[string]*Conversation{}}
}

// Conversation is one chat between a user and the assistant. Messages live in
// memory until Close, which logs the transcript when it holds more than one
// message and belongs to a signed-in user.
type Conversation struct {
	svc  *ChatService
	id   string
	user *domain.User

	mu       sync.Mutex
	messages []domain.ChatMessage
	lastUsed time.Time
	closed   bool
}

// Begin starts a conversation for actor (nil for a signed-out user, whose
// conversation is never logged).
func (s *ChatService) Begin(actor *domain.User) *Conversation {
	var u *domain.User
	if actor != nil {
		cp := *actor
		u = &cp
	}
	c := &Conversation{svc: s, id: uuid.NewString(), user: u, lastUsed: s.Now.now()}
	s.mu.Lock()
	if s.open == nil {
		s.open = map[string]*Conversation{}
	}
	s.open[c.id] = c
	s.mu.Unlock()
	return c
}

// Lookup returns an open conversation owned by actor.
func (s *ChatService) Lookup(actor *domain.User, id string) (*Conversation, error) {
	s.mu.Lock()
	c, ok := s.open[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrItemNotFound
	}
	if !sameOwner(c.user, actor) {
		return nil, ErrForbidden
	}
	return c, nil
}

// Sweep closes conversations idle for longer than idle and returns how many
// were closed.
func (s *ChatService) Sweep(ctx context.Context, idle time.Duration) int {
	cutoff := s.Now.now().Add(-idle)
	s.mu.Lock()
	all := make([]*Conversation, 0, len(s.open))
	for _, c := range s.open {
		all = append(all, c)
	}
	s.mu.Unlock()

	var stale []*Conversation
	for _, c := range all {
		// a conversation that is streaming holds its lock and is not idle
		if !c.mu.TryLock() {
			continue
		}
		if c.lastUsed.Before(cutoff) {
			stale = append(stale, c)
		}
		c.mu.Unlock()
	}

	for _, c := range stale {
		if err := c.Close(ctx); err != nil {
			log.Warn().Err(err).Str("conversation_id", c.id).Msg("closing idle conversation")
		}
	}
	return len(stale)
}

// CloseAll closes every open conversation, e.g. on shutdown.
func (s *ChatService) CloseAll(ctx context.Context) {
	s.mu.Lock()
	all := make([]*Conversation, 0, len(s.open))
	for _, c := range s.open {
		all = append(all, c)
	}
	s.mu.Unlock()
	for _, c := range all {
		if err := c.Close(ctx); err != nil {
			log.Warn().Err(err).Str("conversation_id", c.id).Msg("closing conversation")
		}
	}
}

func (s *ChatService) forget(id string) {
	s.mu.Lock()
	delete(s.open, id)
	s.mu.Unlock()
}

// ID identifies the conversation.
func (c *Conversation) ID() string { return c.id }

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.ChatMessage(nil), c.messages...)
}

// Send appends prompt, streams the reply through onChunk (which may be nil)
// and returns the model's turn. Sends on one conversation are serialized.
//
// On assistant.ErrAPIKeyMissing no model turn is recorded. On any other
// failure FailureReply is recorded as the model's turn and the error is
// returned. Text streamed before a failure or cancellation is kept.
func (c *Conversation) Send(ctx context.Context, prompt string, onChunk func(string) error) (domain.ChatMessage, error) {
	ctx, span := otel.Tracer("services/ChatService").Start(ctx, "Send",
		trace.WithAttributes(attribute.String("conversation.id", c.id)))
	defer span.End()

	prompt, err := text(prompt, c.svc.MaxPromptRunes)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ChatMessage{}, ErrConversationClosed
	}
	c.lastUsed = c.svc.Now.now()

	history := append([]domain.ChatMessage(nil), c.messages...)
	c.messages = append(c.messages, domain.ChatMessage{Role: domain.RoleUser, Text: prompt})

	docs := repo.Knowledge().List(ctx, c.svc.Store)
	req := assistant.Request{
		System:    assistant.SystemInstruction(docs),
		History:   history,
		Prompt:    prompt,
		Knowledge: docs,
	}

	reply := -1
	err = c.svc.Provider.Stream(ctx, req, func(chunk string) error {
		if reply < 0 {
			c.messages = append(c.messages, domain.ChatMessage{Role: domain.RoleModel})
			reply = len(c.messages) - 1
		}
		c.messages[reply].Text += chunk
		if onChunk != nil {
			return onChunk(chunk)
		}
		return nil
	})
	observability.RecordAssistant(c.svc.Provider.Name(), err)
	span.SetAttributes(attribute.String("assistant.provider", c.svc.Provider.Name()))

	switch {
	case err == nil:
		if reply < 0 {
			c.messages = append(c.messages, domain.ChatMessage{Role: domain.RoleModel})
			reply = len(c.messages) - 1
		}
		return c.messages[reply], nil
	case errors.Is(err, assistant.ErrAPIKeyMissing):
		return domain.ChatMessage{}, err
	default:
		span.RecordError(err)
		log.Ctx(ctx).Warn().Err(err).Str("conversation_id", c.id).Msg("assistant reply failed")
		failure := domain.ChatMessage{Role: domain.RoleModel, Text: FailureReply}
		c.messages = append(c.messages, failure)
		return failure, fmt.Errorf("%w: %w", assistant.ErrUpstream, err)
	}
}

// Close ends the conversation and logs its transcript to chatSessions when it
// has more than one message and a signed-in owner. Closing twice is a no-op.
func (c *Conversation) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.svc.forget(c.id)

	if len(c.messages) <= 1 || c.user == nil {
		return nil
	}
	session := domain.ChatSession{
		SessionID: stamp(c.svc.Now.now()),
		UserEmail: c.user.Email,
		UserID:    c.user.ID,
		Messages:  append([]domain.ChatMessage(nil), c.messages...),
	}
	return repo.ChatSessions().Append(ctx, c.svc.Store, session)
}

func sameOwner(a, b *domain.User) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}
