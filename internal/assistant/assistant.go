// Package assistant talks to the language model behind the chat feature.
//
// A Provider receives the system instruction (persona plus the knowledge
// base), the prior conversation and the new prompt, and streams the reply
// back chunk by chunk. Callers only accumulate the text; nothing in the reply
// is parsed.
package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/tbourn/go-wellness-backend/internal/domain"
)

var (
	// ErrAPIKeyMissing means the provider is not configured. It is reported
	// separately so users are pointed at the administrator.
	ErrAPIKeyMissing = errors.New("assistant API key is not configured")
	// ErrUpstream wraps any other provider failure.
	ErrUpstream = errors.New("assistant request failed")
)

// Persona is the base system instruction.
const Persona = "You are Resi, a supportive and friendly AI assistant for mental wellness. " +
	"Keep your responses concise, empathetic, and encouraging. " +
	"Focus on providing a safe and non-judgmental space for users to express themselves. " +
	"Do not give medical advice."

const knowledgePreamble = "Use the following documents to help answer the user's questions if relevant. " +
	"Do not mention that you are using these documents. Just use the information naturally in your response."

// Request is one turn sent to a provider.
type Request struct {
	System    string
	History   []domain.ChatMessage
	Prompt    string
	Knowledge []domain.KnowledgeDocument
}

// Provider streams a reply. onChunk is called for every text fragment in
// order; returning an error from it aborts the stream with that error.
type Provider interface {
	Name() string
	Stream(ctx context.Context, req Request, onChunk func(string) error) error
}

// FormatKnowledge renders documents as titled sections separated by blank
// lines.
func FormatKnowledge(docs []domain.KnowledgeDocument) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, "--- Document: "+d.Title+" ---\n"+d.Content)
	}
	return strings.Join(parts, "\n\n")
}

// SystemInstruction is the persona followed by the knowledge base, if any.
func SystemInstruction(docs []domain.KnowledgeDocument) string {
	if len(docs) == 0 {
		return Persona
	}
	return Persona + "\n\n" + knowledgePreamble + "\n\n" + FormatKnowledge(docs)
}
