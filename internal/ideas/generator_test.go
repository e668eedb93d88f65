package ideas

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"seedtech-calendar/internal/content"
	"seedtech-calendar/internal/llm"
)

type MockTextGenerator struct {
	response string
	err      error
	prompts  []string
	calls    int
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return llm.ContentResponse{}, m.err
	}
	return llm.ContentResponse{Content: m.response}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildPrompt(t *testing.T) {
	gen := NewGenerator(&MockTextGenerator{}, discardLogger())

	t.Run("SpecificPlatform", func(t *testing.T) {
		prompt, err := gen.BuildPrompt(Request{
			Country:   "Sudan",
			MonthName: "July",
			Day:       15,
			Platform:  content.Facebook,
		})
		if err != nil {
			t.Fatalf("BuildPrompt failed: %v", err)
		}
		if !strings.Contains(prompt, "farmers and agricultural professionals in Sudan") {
			t.Errorf("Prompt missing audience framing:\n%s", prompt)
		}
		if !strings.Contains(prompt, "post ideas for facebook to be published on July 15") {
			t.Errorf("Prompt missing platform/date:\n%s", prompt)
		}
		if strings.Contains(prompt, "specific instructions") {
			t.Errorf("Prompt should not mention instructions when there are none:\n%s", prompt)
		}
	})

	t.Run("AllPlatformsPhrase", func(t *testing.T) {
		prompt, err := gen.BuildPrompt(Request{Country: "Oman", MonthName: "July", Day: 1, Platform: content.All})
		if err != nil {
			t.Fatalf("BuildPrompt failed: %v", err)
		}
		if !strings.Contains(prompt, "for various social media platforms") {
			t.Errorf("Expected the generic platforms phrase:\n%s", prompt)
		}
	})

	t.Run("InstructionsQuotedVerbatim", func(t *testing.T) {
		prompt, err := gen.BuildPrompt(Request{
			Country:      "Uganda",
			MonthName:    "August",
			Day:          3,
			Platform:     content.TikTok,
			Instructions: `Focus on "tomato seeds" & quiz formats`,
		})
		if err != nil {
			t.Fatalf("BuildPrompt failed: %v", err)
		}
		if !strings.Contains(prompt, `Please also follow these specific instructions: "Focus on "tomato seeds" & quiz formats"`) {
			t.Errorf("Instructions not quoted verbatim:\n%s", prompt)
		}
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	req := Request{Country: "Sudan", MonthName: "July", Day: 15, Platform: content.Facebook}

	t.Run("Success", func(t *testing.T) {
		mock := &MockTextGenerator{response: `[{"title":"A","description":"B"},{"title":"C","description":"D"}]`}
		gen := NewGenerator(mock, discardLogger())

		posts, _, err := gen.Generate(ctx, req)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("Expected 2 posts, got %d", len(posts))
		}
		if posts[0].Title != "A" || posts[0].Description != "B" {
			t.Errorf("First post mismatch: %+v", posts[0])
		}
		if posts[1].Title != "C" || posts[1].Description != "D" {
			t.Errorf("Second post mismatch: %+v", posts[1])
		}
		if mock.calls != 1 {
			t.Errorf("Expected exactly one outbound call, got %d", mock.calls)
		}
	})

	t.Run("TransportErrorCollapsesToGenericFailure", func(t *testing.T) {
		mock := &MockTextGenerator{err: errors.New("connection reset by peer")}
		gen := NewGenerator(mock, discardLogger())

		_, _, err := gen.Generate(ctx, req)
		if !errors.Is(err, ErrGenerationFailed) {
			t.Fatalf("Expected ErrGenerationFailed, got %v", err)
		}
		if strings.Contains(err.Error(), "connection reset") {
			t.Errorf("Underlying cause leaked into user-facing error: %v", err)
		}
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		mock := &MockTextGenerator{response: "   \n"}
		gen := NewGenerator(mock, discardLogger())

		_, _, err := gen.Generate(ctx, req)
		if !errors.Is(err, ErrGenerationFailed) {
			t.Fatalf("Expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		mock := &MockTextGenerator{response: `{"title": "not an array"}`}
		gen := NewGenerator(mock, discardLogger())

		_, _, err := gen.Generate(ctx, req)
		if !errors.Is(err, ErrGenerationFailed) {
			t.Fatalf("Expected ErrGenerationFailed, got %v", err)
		}
	})

	t.Run("CountNotEnforced", func(t *testing.T) {
		mock := &MockTextGenerator{response: `[{"title":"Only one","description":"idea"}]`}
		gen := NewGenerator(mock, discardLogger())

		posts, _, err := gen.Generate(ctx, req)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(posts) != 1 {
			t.Errorf("Expected the single idea to pass through, got %d", len(posts))
		}
	})

	t.Run("NoCachingBetweenInvocations", func(t *testing.T) {
		mock := &MockTextGenerator{response: `[]`}
		gen := NewGenerator(mock, discardLogger())

		if _, _, err := gen.Generate(ctx, req); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, _, err := gen.Generate(ctx, req); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if mock.calls != 2 {
			t.Errorf("Expected a fresh outbound call per invocation, got %d", mock.calls)
		}
	})
}
