package assistant

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-2.5-flash"
)

// Gemini streams replies from the Generative Language REST API using
// server-sent events.
type Gemini struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewGemini returns a client for model. Empty baseURL or model use the
// public defaults. An empty apiKey is allowed; Stream then fails with
// ErrAPIKeyMissing.
func NewGemini(baseURL, apiKey, model string, timeout time.Duration) *Gemini {
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &Gemini{client: c, apiKey: apiKey, model: model}
}

func (g *Gemini) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiChunk struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Stream sends the conversation and forwards every text part as it arrives.
func (g *Gemini) Stream(ctx context.Context, req Request, onChunk func(string) error) error {
	if strings.TrimSpace(g.apiKey) == "" {
		return ErrAPIKeyMissing
	}

	body := geminiRequest{Contents: make([]geminiContent, 0, len(req.History)+1)}
	if req.System != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	for _, m := range req.History {
		body.Contents = append(body.Contents, geminiContent{Role: m.Role, Parts: []geminiPart{{Text: m.Text}}})
	}
	body.Contents = append(body.Contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}})

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", g.apiKey).
		SetHeader("Accept", "text/event-stream").
		SetQueryParam("alt", "sse").
		SetBody(&body).
		SetDoNotParseResponse(true).
		Post(fmt.Sprintf("/v1beta/models/%s:streamGenerateContent", g.model))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	raw := resp.RawBody()
	defer raw.Close()

	if resp.StatusCode() != http.StatusOK {
		var buf strings.Builder
		sc := bufio.NewScanner(raw)
		for sc.Scan() && buf.Len() < 512 {
			buf.WriteString(sc.Text())
		}
		log.Warn().Int("status", resp.StatusCode()).Str("model", g.model).Msg("gemini request rejected")
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode(), buf.String())
	}

	sc := bufio.NewScanner(raw)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}
		var chunk geminiChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return fmt.Errorf("%w: decode chunk: %w", ErrUpstream, err)
		}
		if chunk.Error != nil {
			return fmt.Errorf("%w: %d %s", ErrUpstream, chunk.Error.Code, chunk.Error.Message)
		}
		for _, c := range chunk.Candidates {
			for _, p := range c.Content.Parts {
				if p.Text == "" {
					continue
				}
				if err := onChunk(p.Text); err != nil {
					return err
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return nil
}
