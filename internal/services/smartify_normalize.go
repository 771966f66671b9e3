package services

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/smartnotes-backend/internal/types"
)

// Normalization turns raw model output (map[string]any per item) into typed
// records. The rules are deliberately forgiving: a malformed field is
// nulled or defaulted, never fatal. Only a blank required text field
// (task / idea / content) drops an item.

func strField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func strSliceField(m map[string]any, key string) []string {
	out := []string{}
	v, ok := m[key]
	if !ok {
		return out
	}
	arr, ok := v.([]any)
	if !ok {
		return out
	}
	for _, e := range arr {
		s, ok := e.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func objField(m map[string]any, key string) map[string]any {
	v, ok := m[key]
	if !ok {
		return map[string]any{}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	out := make(map[string]any, len(obj))
	for k, val := range obj {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out[k] = val
	}
	return out
}

func jsonArray(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func jsonObject(values map[string]any) datatypes.JSON {
	if values == nil {
		values = map[string]any{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func coercePriority(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case types.PriorityHigh:
		return types.PriorityHigh
	case types.PriorityLow:
		return types.PriorityLow
	case types.PriorityMedium:
		return types.PriorityMedium
	default:
		return types.PriorityMedium
	}
}

func coerceIdeaCategory(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case types.IdeaCategoryFeature,
		types.IdeaCategoryImprovement,
		types.IdeaCategoryIntegration,
		types.IdeaCategoryPivot,
		types.IdeaCategoryExperiment,
		types.IdeaCategoryNewProduct:
		return strings.ToLower(strings.TrimSpace(raw))
	default:
		return types.IdeaCategoryFeature
	}
}

func coerceDumpCategory(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case types.DumpCategoryMeeting,
		types.DumpCategoryBlocker,
		types.DumpCategoryDecision,
		types.DumpCategoryQuestion,
		types.DumpCategoryFollowup:
		return strings.ToLower(strings.TrimSpace(raw))
	default:
		return types.DumpCategoryFollowup
	}
}

var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
}

// parseDeadline is defensive: anything that fails every layout ("sometime
// next quarter") becomes nil, never an error.
func parseDeadline(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// weekOfMonday shifts now back to the most recent Monday at midnight UTC.
// Sunday shifts back 6 days, every other day weekday-1.
func weekOfMonday(now time.Time) time.Time {
	now = now.UTC()
	var back int
	if now.Weekday() == time.Sunday {
		back = 6
	} else {
		back = int(now.Weekday()) - 1
	}
	monday := now.AddDate(0, 0, -back)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeActionItem(raw map[string]any) *types.ActionItem {
	task := strField(raw, "task")
	if task == "" {
		return nil
	}
	item := &types.ActionItem{
		Task:     task,
		Priority: coercePriority(strField(raw, "priority")),
		Status:   types.ActionStatusOpen,
	}
	if assignee := strField(raw, "assignee"); assignee != "" {
		item.Assignee = &assignee
	}
	item.Deadline = parseDeadline(strField(raw, "deadline"))
	return item
}

// normalizeInvestorUpdate returns nil when the whole draft is empty: an
// update with no subject, no body, and nothing classified was not found,
// not drafted.
func normalizeInvestorUpdate(raw map[string]any) *types.InvestorUpdate {
	subject := strField(raw, "subject")
	body := strField(raw, "body")
	wins := strSliceField(raw, "wins")
	metrics := objField(raw, "metrics")
	challenges := strSliceField(raw, "challenges")
	asks := strSliceField(raw, "asks")

	if subject == "" && body == "" && len(wins) == 0 && len(metrics) == 0 && len(challenges) == 0 && len(asks) == 0 {
		return nil
	}
	return &types.InvestorUpdate{
		Subject:    subject,
		Body:       body,
		Wins:       jsonArray(wins),
		Metrics:    jsonObject(metrics),
		Challenges: jsonArray(challenges),
		Asks:       jsonArray(asks),
		Status:     types.UpdateStatusDraft,
	}
}

// normalizeProgressLog returns nil when all three buckets are empty.
// WeekOf is computed by the pipeline, never taken from the model.
func normalizeProgressLog(raw map[string]any, now time.Time) *types.ProgressLog {
	completed := strSliceField(raw, "completed")
	inProgress := strSliceField(raw, "in_progress")
	blocked := strSliceField(raw, "blocked")

	if len(completed) == 0 && len(inProgress) == 0 && len(blocked) == 0 {
		return nil
	}
	return &types.ProgressLog{
		WeekOf:     weekOfMonday(now),
		Completed:  jsonArray(completed),
		InProgress: jsonArray(inProgress),
		Blocked:    jsonArray(blocked),
	}
}

func normalizeProductIdea(raw map[string]any) *types.ProductIdea {
	idea := strField(raw, "idea")
	if idea == "" {
		return nil
	}
	out := &types.ProductIdea{
		Idea:     idea,
		Category: coerceIdeaCategory(strField(raw, "category")),
		Priority: coercePriority(strField(raw, "priority")),
		Status:   types.IdeaStatusIdea,
		Votes:    0,
	}
	if context := strField(raw, "context"); context != "" {
		out.Context = &context
	}
	return out
}

func normalizeBrainDumpEntry(raw map[string]any) *types.BrainDumpEntry {
	content := strField(raw, "content")
	if content == "" {
		return nil
	}
	return &types.BrainDumpEntry{
		Content:      content,
		Category:     coerceDumpCategory(strField(raw, "category")),
		Participants: jsonArray(strSliceField(raw, "participants")),
	}
}
