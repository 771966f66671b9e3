package services

import (
	"testing"
	"time"

	"github.com/yungbote/smartnotes-backend/internal/types"
)

func TestCoercePriority(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "high", raw: "high", want: types.PriorityHigh},
		{name: "high_mixed_case", raw: "HiGh", want: types.PriorityHigh},
		{name: "low", raw: "low", want: types.PriorityLow},
		{name: "medium", raw: "medium", want: types.PriorityMedium},
		{name: "padded", raw: "  Low  ", want: types.PriorityLow},
		{name: "empty_defaults_medium", raw: "", want: types.PriorityMedium},
		{name: "unrecognized_defaults_medium", raw: "urgent", want: types.PriorityMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := coercePriority(tc.raw); got != tc.want {
				t.Fatalf("coercePriority(%q)=%q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestCoerceCategories(t *testing.T) {
	if got := coerceIdeaCategory("New_Product"); got != types.IdeaCategoryNewProduct {
		t.Fatalf("coerceIdeaCategory(New_Product)=%q", got)
	}
	if got := coerceIdeaCategory("something else"); got != types.IdeaCategoryFeature {
		t.Fatalf("unrecognized idea category should default to feature, got %q", got)
	}
	if got := coerceDumpCategory("MEETING"); got != types.DumpCategoryMeeting {
		t.Fatalf("coerceDumpCategory(MEETING)=%q", got)
	}
	if got := coerceDumpCategory("rant"); got != types.DumpCategoryFollowup {
		t.Fatalf("unrecognized dump category should default to followup, got %q", got)
	}
}

func TestParseDeadline(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantNil bool
		want    string
	}{
		{name: "iso", raw: "2026-09-04", want: "2026-09-04"},
		{name: "long_form", raw: "January 2, 2026", want: "2026-01-02"},
		{name: "slash_form", raw: "2026/09/04", want: "2026-09-04"},
		{name: "empty", raw: "", wantNil: true},
		{name: "free_text", raw: "sometime next quarter", wantNil: true},
		{name: "garbage", raw: "????", wantNil: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseDeadline(tc.raw)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("parseDeadline(%q)=%v, want nil", tc.raw, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseDeadline(%q)=nil, want %s", tc.raw, tc.want)
			}
			if got.Format("2006-01-02") != tc.want {
				t.Fatalf("parseDeadline(%q)=%s, want %s", tc.raw, got.Format("2006-01-02"), tc.want)
			}
		})
	}
}

func TestWeekOfMonday(t *testing.T) {
	// 2026-08-24 is a Monday.
	cases := []struct {
		name string
		now  time.Time
	}{
		{name: "monday", now: time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)},
		{name: "tuesday", now: time.Date(2026, 8, 25, 23, 59, 59, 0, time.UTC)},
		{name: "saturday", now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)},
		{name: "sunday_shifts_back_six", now: time.Date(2026, 8, 30, 0, 0, 1, 0, time.UTC)},
	}
	want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := weekOfMonday(tc.now)
			if !got.Equal(want) {
				t.Fatalf("weekOfMonday(%s)=%s, want %s", tc.now, got, want)
			}
			if got.Weekday() != time.Monday {
				t.Fatalf("weekOfMonday(%s) fell on %s", tc.now, got.Weekday())
			}
		})
	}
}

func TestNormalizeActionItem(t *testing.T) {
	t.Run("blank_task_drops_item", func(t *testing.T) {
		if got := normalizeActionItem(map[string]any{"task": "   "}); got != nil {
			t.Fatalf("expected nil for blank task, got %+v", got)
		}
	})

	t.Run("invalid_deadline_nulls_not_drops", func(t *testing.T) {
		got := normalizeActionItem(map[string]any{
			"task":     "send roadmap",
			"deadline": "sometime next quarter",
			"priority": "high",
		})
		if got == nil {
			t.Fatal("item with invalid deadline must survive")
		}
		if got.Deadline != nil {
			t.Fatalf("invalid deadline should normalize to nil, got %v", got.Deadline)
		}
		if got.Priority != types.PriorityHigh {
			t.Fatalf("priority=%q, want high", got.Priority)
		}
	})

	t.Run("full_item", func(t *testing.T) {
		got := normalizeActionItem(map[string]any{
			"task":     "send the roadmap to Sarah",
			"assignee": "Sarah",
			"deadline": "2026-09-04",
			"priority": "high",
		})
		if got == nil {
			t.Fatal("expected item")
		}
		if got.Assignee == nil || *got.Assignee != "Sarah" {
			t.Fatalf("assignee=%v, want Sarah", got.Assignee)
		}
		if got.Deadline == nil || got.Deadline.Format("2006-01-02") != "2026-09-04" {
			t.Fatalf("deadline=%v, want 2026-09-04", got.Deadline)
		}
		if got.Status != types.ActionStatusOpen {
			t.Fatalf("status=%q, want open", got.Status)
		}
	})

	t.Run("empty_assignee_stays_nil", func(t *testing.T) {
		got := normalizeActionItem(map[string]any{"task": "fix billing", "assignee": "  "})
		if got == nil || got.Assignee != nil {
			t.Fatalf("got %+v, want item with nil assignee", got)
		}
	})
}

func TestNormalizeInvestorUpdate(t *testing.T) {
	t.Run("entirely_empty_is_dropped", func(t *testing.T) {
		raw := map[string]any{
			"subject":    "",
			"body":       "  ",
			"wins":       []any{},
			"metrics":    map[string]any{},
			"challenges": []any{""},
			"asks":       []any{},
		}
		if got := normalizeInvestorUpdate(raw); got != nil {
			t.Fatalf("expected nil for empty update, got %+v", got)
		}
	})

	t.Run("single_win_keeps_record", func(t *testing.T) {
		got := normalizeInvestorUpdate(map[string]any{
			"wins": []any{"shipped the new dashboard"},
		})
		if got == nil {
			t.Fatal("expected record")
		}
		if got.Status != types.UpdateStatusDraft {
			t.Fatalf("status=%q, want draft", got.Status)
		}
		if string(got.Wins) != `["shipped the new dashboard"]` {
			t.Fatalf("wins=%s", string(got.Wins))
		}
	})

	t.Run("metrics_kept_as_object", func(t *testing.T) {
		got := normalizeInvestorUpdate(map[string]any{
			"subject": "August update",
			"metrics": map[string]any{"mrr": 12500.0},
		})
		if got == nil {
			t.Fatal("expected record")
		}
		if string(got.Metrics) != `{"mrr":12500}` {
			t.Fatalf("metrics=%s", string(got.Metrics))
		}
	})
}

func TestNormalizeProgressLog(t *testing.T) {
	now := time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC) // Wednesday

	t.Run("all_buckets_empty_is_dropped", func(t *testing.T) {
		raw := map[string]any{"completed": []any{}, "in_progress": []any{}, "blocked": []any{"  "}}
		if got := normalizeProgressLog(raw, now); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("week_of_is_monday", func(t *testing.T) {
		got := normalizeProgressLog(map[string]any{"completed": []any{"shipped new dashboard"}}, now)
		if got == nil {
			t.Fatal("expected record")
		}
		want := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		if !got.WeekOf.Equal(want) {
			t.Fatalf("week_of=%s, want %s", got.WeekOf, want)
		}
	})
}

func TestNormalizeProductIdea(t *testing.T) {
	t.Run("blank_idea_drops_item", func(t *testing.T) {
		if got := normalizeProductIdea(map[string]any{"idea": ""}); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
	t.Run("defaults", func(t *testing.T) {
		got := normalizeProductIdea(map[string]any{"idea": "slack integration", "category": "Integration"})
		if got == nil {
			t.Fatal("expected item")
		}
		if got.Category != types.IdeaCategoryIntegration {
			t.Fatalf("category=%q", got.Category)
		}
		if got.Priority != types.PriorityMedium || got.Status != types.IdeaStatusIdea || got.Votes != 0 {
			t.Fatalf("defaults wrong: %+v", got)
		}
		if got.Context != nil {
			t.Fatalf("context should stay nil, got %v", got.Context)
		}
	})
}

func TestNormalizeBrainDumpEntry(t *testing.T) {
	t.Run("blank_content_drops_item", func(t *testing.T) {
		if got := normalizeBrainDumpEntry(map[string]any{"content": "   ", "category": "meeting"}); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
	t.Run("participants_survive", func(t *testing.T) {
		got := normalizeBrainDumpEntry(map[string]any{
			"content":      "call with Sarah and Raj about pricing",
			"category":     "meeting",
			"participants": []any{"Sarah", "Raj"},
		})
		if got == nil {
			t.Fatal("expected entry")
		}
		if got.Category != types.DumpCategoryMeeting {
			t.Fatalf("category=%q", got.Category)
		}
		if string(got.Participants) != `["Sarah","Raj"]` {
			t.Fatalf("participants=%s", string(got.Participants))
		}
	})
	t.Run("no_participants_is_empty_array", func(t *testing.T) {
		got := normalizeBrainDumpEntry(map[string]any{"content": "should we drop the annual plan?", "category": "question"})
		if got == nil {
			t.Fatal("expected entry")
		}
		if string(got.Participants) != `[]` {
			t.Fatalf("participants=%s, want []", string(got.Participants))
		}
	})
}
