package metrics

import (
	"path/filepath"
	"testing"
	"time"

	"seedtech-calendar/internal/database"
	"seedtech-calendar/internal/shared"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "metrics.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewStore(db.SQL)
}

func TestRecordAndDailyUsage(t *testing.T) {
	store := newTestStore(t)

	metrics := []GenerationMetric{
		{Source: "web", Model: "gemini-2.5-flash", PromptTokens: 120, CompletionTokens: 80, LatencyMS: 900},
		{Source: "telegram", Model: "gemini-2.5-flash", PromptTokens: 30, CompletionTokens: 20, LatencyMS: 450},
	}
	for _, m := range metrics {
		if err := store.Record(m); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	usage, err := store.GetDailyUsage(7)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("Expected 1 day of usage, got %d", len(usage))
	}
	if usage[0].TotalPrompt != 150 {
		t.Errorf("Expected 150 prompt tokens, got %d", usage[0].TotalPrompt)
	}
	if usage[0].TotalCompletion != 100 {
		t.Errorf("Expected 100 completion tokens, got %d", usage[0].TotalCompletion)
	}
	if usage[0].TotalExecution != 2 {
		t.Errorf("Expected 2 executions, got %d", usage[0].TotalExecution)
	}
}

func TestRecordMetaSkipsEmptyUsage(t *testing.T) {
	store := newTestStore(t)

	// A failed call that never reached the model carries no usage.
	if err := store.RecordMeta(shared.GenerationMeta{Source: "web"}); err != nil {
		t.Fatalf("RecordMeta failed: %v", err)
	}

	usage, err := store.GetDailyUsage(1)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(usage) != 0 {
		t.Errorf("Expected no usage rows, got %d", len(usage))
	}

	meta := shared.GenerationMeta{
		Source: "web",
		Usage: shared.TokenUsage{
			PromptTokens:     50,
			CompletionTokens: 25,
			TotalTokens:      75,
			Model:            "gemini-2.5-flash",
		},
		Latency: 700 * time.Millisecond,
	}
	if err := store.RecordMeta(meta); err != nil {
		t.Fatalf("RecordMeta failed: %v", err)
	}

	usage, err = store.GetDailyUsage(1)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(usage) != 1 || usage[0].TotalExecution != 1 {
		t.Fatalf("Expected one recorded execution, got %+v", usage)
	}
}

func TestCleanup(t *testing.T) {
	store := newTestStore(t)

	old := GenerationMetric{
		Source:       "web",
		Model:        "gemini-2.5-flash",
		PromptTokens: 10,
		Timestamp:    time.Now().UTC().AddDate(0, 0, -40),
	}
	recent := GenerationMetric{
		Source:       "web",
		Model:        "gemini-2.5-flash",
		PromptTokens: 10,
	}
	if err := store.Record(old); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(recent); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	removed, err := store.Cleanup(30)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 removed row, got %d", removed)
	}
}
