package assistant

import (
	"context"
	"strings"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/search"
)

// Local answers from the knowledge base without a model: it returns the best
// matching paragraphs, or a gentle default when nothing matches. It needs no
// credentials, which makes it suitable for offline use and tests.
type Local struct {
	// TopK bounds the number of paragraphs quoted per reply.
	TopK int
	// MinScore drops weak matches.
	MinScore float64
	// Fallback is the reply when the knowledge base has nothing relevant.
	Fallback string
}

// NewLocal returns a Local provider with conservative defaults.
func NewLocal() *Local {
	return &Local{
		TopK:     2,
		MinScore: 0.05,
		Fallback: "I'm here for you. Could you tell me a little more about how you're feeling?",
	}
}

func (l *Local) Name() string { return "local" }

// Stream emits one chunk per quoted paragraph.
func (l *Local) Stream(ctx context.Context, req Request, onChunk func(string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	idx := search.NewIndexFromDocuments(toSearchDocs(req.Knowledge), search.WithMinParagraphRunes(0))

	var picked []string
	for _, r := range idx.TopK(req.Prompt, l.TopK) {
		if r.Score < l.MinScore {
			continue
		}
		picked = append(picked, r.Snippet)
	}
	if len(picked) == 0 {
		return onChunk(l.Fallback)
	}
	for i, p := range picked {
		if i > 0 {
			p = "\n\n" + p
		}
		if err := onChunk(p); err != nil {
			return err
		}
	}
	return nil
}

func toSearchDocs(docs []domain.KnowledgeDocument) []search.Document {
	out := make([]search.Document, 0, len(docs))
	for _, d := range docs {
		if strings.TrimSpace(d.Content) == "" {
			continue
		}
		out = append(out, search.Document{Title: d.Title, Content: d.Content})
	}
	return out
}
