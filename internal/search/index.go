// Package search ranks knowledge-base paragraphs against a free-text query.
// It backs the offline assistant and has no logging; callers decide what to
// report.
//
// The index is immutable after construction and safe for concurrent use.
// Scoring is the Jaccard similarity between the query token set and each
// paragraph's token set: score = |Q ∩ P| / |Q ∪ P|. Ties are broken by
// shorter paragraph, then lexically, so results are deterministic.
package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Result is a ranked paragraph with its similarity score and the title of the
// document it came from.
type Result struct {
	Snippet string
	Score   float64
	Source  string
}

// Index is implemented by all search indices.
type Index interface {
	TopK(query string, k int) []Result
	Len() int
}

// Document is a titled body of text. Paragraphs are separated by blank lines.
type Document struct {
	Title   string
	Content string
}

type Option func(*config)

type config struct {
	minParagraphRunes int
	stopwords         map[string]struct{}
	maxDocs           int
}

func defaultConfig() config {
	return config{minParagraphRunes: 20}
}

// WithMinParagraphRunes drops paragraphs shorter than n runes.
func WithMinParagraphRunes(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.minParagraphRunes = n
		}
	}
}

// WithStopwords excludes words from both query and paragraph tokens.
func WithStopwords(words []string) Option {
	return func(c *config) {
		m := make(map[string]struct{}, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				m[w] = struct{}{}
			}
		}
		if len(m) > 0 {
			c.stopwords = m
		}
	}
}

// WithMaxDocs caps the number of indexed paragraphs.
func WithMaxDocs(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDocs = n
		}
	}
}

type para struct {
	text   string
	source string
	tokens map[string]struct{}
}

type index struct {
	cfg   config
	paras []para
}

// NewIndexFromDocuments indexes every paragraph of every document.
func NewIndexFromDocuments(docs []Document, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	idx := &index{cfg: cfg}
	for _, d := range docs {
		for _, p := range SplitParagraphs(d.Content) {
			if !idx.add(p, d.Title) {
				return idx
			}
		}
	}
	return idx
}

// NewIndexFromStrings indexes paragraphs with no source document.
func NewIndexFromStrings(paragraphs []string, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	idx := &index{cfg: cfg}
	for _, p := range paragraphs {
		if !idx.add(p, "") {
			break
		}
	}
	return idx
}

// add reports false once the paragraph cap is reached.
func (i *index) add(raw, source string) bool {
	if i.cfg.maxDocs > 0 && len(i.paras) >= i.cfg.maxDocs {
		return false
	}
	t := strings.TrimSpace(normalizeWhitespace(raw))
	if t == "" || utf8.RuneCountInString(t) < i.cfg.minParagraphRunes {
		return true
	}
	toks := tokenize(t, i.cfg.stopwords)
	if len(toks) == 0 {
		return true
	}
	i.paras = append(i.paras, para{text: t, source: source, tokens: toks})
	return true
}

func (i *index) Len() int { return len(i.paras) }

// TopK returns up to k best-matching paragraphs. k <= 0 means 3.
func (i *index) TopK(q string, k int) []Result {
	if len(i.paras) == 0 || strings.TrimSpace(q) == "" {
		return nil
	}
	if k <= 0 {
		k = 3
	}
	qTokens := tokenize(q, i.cfg.stopwords)
	if len(qTokens) == 0 {
		return nil
	}

	type scored struct {
		Result
		runes int
	}
	buf := make([]scored, 0, min(k*4, len(i.paras)))
	for _, p := range i.paras {
		over := overlap(qTokens, p.tokens)
		if over == 0 {
			continue
		}
		score := float64(over) / float64(len(qTokens)+len(p.tokens)-over)
		buf = append(buf, scored{
			Result: Result{Snippet: p.text, Score: score, Source: p.source},
			runes:  utf8.RuneCountInString(p.text),
		})
	}
	if len(buf) == 0 {
		return nil
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].Score != buf[b].Score {
			return buf[a].Score > buf[b].Score
		}
		if buf[a].runes != buf[b].runes {
			return buf[a].runes < buf[b].runes
		}
		return buf[a].Snippet < buf[b].Snippet
	})

	if k > len(buf) {
		k = len(buf)
	}
	out := make([]Result, k)
	for n := 0; n < k; n++ {
		out[n] = buf[n].Result
	}
	return out
}

var wordRE = regexp.MustCompile(`\p{L}+\p{N}*`)

func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	words := wordRE.FindAllString(strings.ToLower(s), -1)
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, skip := stop[w]; skip {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

func overlap(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func normalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\r' {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

var paraSplitRE = regexp.MustCompile(`\n\s*\n`)

// SplitParagraphs splits text on blank lines and drops empty chunks.
func SplitParagraphs(text string) []string {
	chunks := paraSplitRE.Split(text, -1)
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if t := strings.TrimSpace(c); t != "" {
			out = append(out, t)
		}
	}
	return out
}
