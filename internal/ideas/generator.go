// Package ideas generates on-demand social post ideas for a calendar day
// through the external text-generation service.
package ideas

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"seedtech-calendar/internal/content"
	"seedtech-calendar/internal/llm"
	"seedtech-calendar/internal/shared"
)

//go:embed ideas_prompt.md
var ideasPrompt string

// GenericFailureMessage is the only error text shown to end users. The
// underlying cause is logged, never surfaced.
const GenericFailureMessage = "Sorry, we couldn't generate ideas right now. Please try again later."

// ErrGenerationFailed wraps every AI-path failure: transport errors,
// non-success responses, empty payloads and unparseable payloads.
var ErrGenerationFailed = errors.New(GenericFailureMessage)

// AIPost is a generated post idea. Unlike a scheduled ContentPost it
// carries no date; it lives only in session state.
type AIPost struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Request describes one generation.
type Request struct {
	Country      string // localized display name
	MonthName    string
	Day          int
	Platform     content.PlatformID
	Instructions string // free text, quoted verbatim into the prompt
}

// Generator builds prompts and runs one outbound generation call per
// Generate invocation. Results are never cached.
type Generator struct {
	textGen llm.TextGenerator
	logger  *slog.Logger
	tmpl    *template.Template
}

// NewGenerator creates a Generator on top of a text-generation client.
func NewGenerator(textGen llm.TextGenerator, logger *slog.Logger) *Generator {
	return &Generator{
		textGen: textGen,
		logger:  logger,
		tmpl:    template.Must(template.New("ideas").Parse(ideasPrompt)),
	}
}

// BuildPrompt renders the prompt for a request.
func (g *Generator) BuildPrompt(req Request) (string, error) {
	platform := string(req.Platform)
	if req.Platform == content.All {
		platform = "various social media platforms"
	}

	data := struct {
		Country      string
		Platform     string
		Date         string
		Instructions string
	}{
		Country:      req.Country,
		Platform:     platform,
		Date:         fmt.Sprintf("%s %d", req.MonthName, req.Day),
		Instructions: req.Instructions,
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Generate runs exactly one generation call and parses the JSON payload
// into post ideas. Any failure collapses to ErrGenerationFailed; the
// cause is logged. The returned meta is valid even on failure so callers
// can record usage.
func (g *Generator) Generate(ctx context.Context, req Request) ([]AIPost, shared.GenerationMeta, error) {
	start := time.Now()
	meta := shared.GenerationMeta{Source: "ideas"}

	prompt, err := g.BuildPrompt(req)
	if err != nil {
		g.logger.Error("prompt build failed", "error", err)
		meta.Latency = time.Since(start)
		return nil, meta, ErrGenerationFailed
	}

	resp, err := g.textGen.GenerateContent(ctx, prompt)
	meta.Usage = resp.Usage
	meta.Latency = time.Since(start)
	if err != nil {
		g.logger.Error("generation call failed", "country", req.Country, "platform", req.Platform, "error", err)
		return nil, meta, ErrGenerationFailed
	}

	payload := strings.TrimSpace(resp.Content)
	if payload == "" {
		g.logger.Error("generation returned empty payload", "country", req.Country, "platform", req.Platform)
		return nil, meta, ErrGenerationFailed
	}

	var posts []AIPost
	if err := json.Unmarshal([]byte(payload), &posts); err != nil {
		g.logger.Error("generation payload did not match schema", "error", err)
		return nil, meta, ErrGenerationFailed
	}

	// The prompt asks for two ideas but the schema does not enforce a
	// count; whatever came back is returned as-is.
	return posts, meta, nil
}
