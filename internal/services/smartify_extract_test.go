package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

// fakeOpenAIClient answers GenerateJSON from a canned response per schema
// name and records how often each prompt ran.
type fakeOpenAIClient struct {
	mu        sync.Mutex
	responses map[string]map[string]any
	errs      map[string]error
	calls     map[string]int
}

func newFakeOpenAIClient() *fakeOpenAIClient {
	return &fakeOpenAIClient{
		responses: map[string]map[string]any{},
		errs:      map[string]error{},
		calls:     map[string]int{},
	}
}

func (f *fakeOpenAIClient) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[schemaName]++
	if err, ok := f.errs[schemaName]; ok {
		return nil, err
	}
	if resp, ok := f.responses[schemaName]; ok {
		return resp, nil
	}
	return map[string]any{}, nil
}

func (f *fakeOpenAIClient) callCount(schemaName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[schemaName]
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestExtractActionItems(t *testing.T) {
	ctx := context.Background()

	t.Run("happy_path", func(t *testing.T) {
		client := newFakeOpenAIClient()
		client.responses[string(promptActionItems)] = map[string]any{
			"action_items": []any{
				map[string]any{"task": "send roadmap to Sarah", "assignee": "Sarah", "deadline": "2026-09-04", "priority": "high"},
				map[string]any{"task": "   ", "assignee": "", "deadline": "", "priority": "low"},
				map[string]any{"task": "review pricing page", "assignee": "me", "deadline": "whenever", "priority": "low"},
			},
		}
		e := newSmartifyExtractor(testLogger(t), client, nil)
		items := e.extractActionItems(ctx, "transcript")
		if len(items) != 2 {
			t.Fatalf("got %d items, want 2 (blank task dropped)", len(items))
		}
		if items[0].Priority != types.PriorityHigh {
			t.Fatalf("priority=%q, want high", items[0].Priority)
		}
		if items[1].Deadline != nil {
			t.Fatalf("unparseable deadline should be nil, got %v", items[1].Deadline)
		}
	})

	t.Run("client_error_degrades_to_zero_items", func(t *testing.T) {
		client := newFakeOpenAIClient()
		client.errs[string(promptActionItems)] = errors.New("openai http 503: overloaded")
		e := newSmartifyExtractor(testLogger(t), client, nil)
		items := e.extractActionItems(ctx, "transcript")
		if len(items) != 0 {
			t.Fatalf("got %d items, want 0", len(items))
		}
	})

	t.Run("missing_key_is_zero_items", func(t *testing.T) {
		client := newFakeOpenAIClient()
		client.responses[string(promptActionItems)] = map[string]any{"tasks": []any{}}
		e := newSmartifyExtractor(testLogger(t), client, nil)
		if items := e.extractActionItems(ctx, "transcript"); len(items) != 0 {
			t.Fatalf("got %d items, want 0", len(items))
		}
	})

	t.Run("wrong_shape_entries_are_skipped", func(t *testing.T) {
		client := newFakeOpenAIClient()
		client.responses[string(promptActionItems)] = map[string]any{
			"action_items": []any{"not an object", 42, map[string]any{"task": "real one"}},
		}
		e := newSmartifyExtractor(testLogger(t), client, nil)
		items := e.extractActionItems(ctx, "transcript")
		if len(items) != 1 || items[0].Task != "real one" {
			t.Fatalf("got %+v, want the single well-formed item", items)
		}
	})
}

func TestExtractInvestorUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("single_draft", func(t *testing.T) {
		client := newFakeOpenAIClient()
		client.responses[string(promptInvestorUpdate)] = map[string]any{
			"update": map[string]any{
				"subject":    "August momentum",
				"body":       "We shipped the dashboard...",
				"wins":       []any{"shipped dashboard"},
				"metrics":    map[string]any{"mrr": 12500.0},
				"challenges": []any{"checkout mockups blocked"},
				"asks":       []any{"intro to a payments PM"},
			},
		}
		e := newSmartifyExtractor(testLogger(t), client, nil)
		update := e.extractInvestorUpdate(ctx, "transcript")
		if update == nil {
			t.Fatal("expected a draft")
		}
		if update.Subject != "August momentum" || update.Status != types.UpdateStatusDraft {
			t.Fatalf("got %+v", update)
		}
	})

	t.Run("empty_draft_filtered_at_category_level", func(t *testing.T) {
		client := newFakeOpenAIClient()
		client.responses[string(promptInvestorUpdate)] = map[string]any{
			"update": map[string]any{
				"subject": "", "body": "", "wins": []any{}, "metrics": map[string]any{}, "challenges": []any{}, "asks": []any{},
			},
		}
		e := newSmartifyExtractor(testLogger(t), client, nil)
		if update := e.extractInvestorUpdate(ctx, "transcript"); update != nil {
			t.Fatalf("empty draft must not survive, got %+v", update)
		}
	})

	t.Run("client_error_is_nil", func(t *testing.T) {
		client := newFakeOpenAIClient()
		client.errs[string(promptInvestorUpdate)] = errors.New("timeout")
		e := newSmartifyExtractor(testLogger(t), client, nil)
		if update := e.extractInvestorUpdate(ctx, "transcript"); update != nil {
			t.Fatalf("got %+v, want nil", update)
		}
	})
}

func TestExtractProgressLog(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) } // Friday

	client := newFakeOpenAIClient()
	client.responses[string(promptProgressLog)] = map[string]any{
		"progress": map[string]any{
			"completed":   []any{"shipped new dashboard"},
			"in_progress": []any{},
			"blocked":     []any{"waiting on design mockups for checkout"},
		},
	}
	e := newSmartifyExtractor(testLogger(t), client, now)
	entry := e.extractProgressLog(ctx, "transcript")
	if entry == nil {
		t.Fatal("expected a progress log")
	}
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	if !entry.WeekOf.Equal(want) {
		t.Fatalf("week_of=%s, want %s", entry.WeekOf, want)
	}

	t.Run("all_buckets_empty_is_nil", func(t *testing.T) {
		client := newFakeOpenAIClient()
		client.responses[string(promptProgressLog)] = map[string]any{
			"progress": map[string]any{"completed": []any{}, "in_progress": []any{}, "blocked": []any{}},
		}
		e := newSmartifyExtractor(testLogger(t), client, now)
		if entry := e.extractProgressLog(ctx, "transcript"); entry != nil {
			t.Fatalf("got %+v, want nil", entry)
		}
	})
}

func TestExtractProductIdeasAndBrainDump(t *testing.T) {
	ctx := context.Background()
	client := newFakeOpenAIClient()
	client.responses[string(promptProductIdeas)] = map[string]any{
		"ideas": []any{
			map[string]any{"idea": "slack integration", "category": "integration", "priority": "high", "context": "two customers asked"},
			map[string]any{"idea": "", "category": "feature", "priority": "low", "context": ""},
		},
	}
	client.responses[string(promptBrainDump)] = map[string]any{
		"items": []any{
			map[string]any{"content": "call with Sarah about pricing", "category": "meeting", "participants": []any{"Sarah"}},
			map[string]any{"content": "should we sunset the legacy plan?", "category": "question", "participants": []any{}},
		},
	}
	e := newSmartifyExtractor(testLogger(t), client, nil)

	ideas := e.extractProductIdeas(ctx, "transcript")
	if len(ideas) != 1 {
		t.Fatalf("got %d ideas, want 1", len(ideas))
	}
	if ideas[0].Context == nil || *ideas[0].Context != "two customers asked" {
		t.Fatalf("context=%v", ideas[0].Context)
	}

	entries := e.extractBrainDump(ctx, "transcript")
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Category != types.DumpCategoryMeeting || entries[1].Category != types.DumpCategoryQuestion {
		t.Fatalf("categories: %q, %q", entries[0].Category, entries[1].Category)
	}
}
