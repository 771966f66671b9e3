package services

import (
	"context"
	"time"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

// smartifyExtractor wraps one model call per category. An extractor never
// fails the pipeline: a collaborator error, a missing top-level key, or a
// wrong shape all log and yield zero items so the other categories keep
// going.
type smartifyExtractor struct {
	log *logger.Logger
	ai  OpenAIClient
	now func() time.Time
}

func newSmartifyExtractor(log *logger.Logger, ai OpenAIClient, now func() time.Time) *smartifyExtractor {
	if now == nil {
		now = time.Now
	}
	return &smartifyExtractor{
		log: log.With("component", "SmartifyExtractor"),
		ai:  ai,
		now: now,
	}
}

func rawItems(obj map[string]any, key string) []map[string]any {
	v, ok := obj[key]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, e := range arr {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, m)
	}
	return out
}

func rawObject(obj map[string]any, key string) map[string]any {
	v, ok := obj[key]
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

func (e *smartifyExtractor) extractActionItems(ctx context.Context, transcript string) []*types.ActionItem {
	obj, err := e.ai.GenerateJSON(ctx, actionItemsSystemPrompt, transcriptUserPrompt(transcript), string(promptActionItems), actionItemsSchema())
	if err != nil {
		e.log.Warn("Action item extraction failed, treating as zero items", "error", err)
		return []*types.ActionItem{}
	}
	items := []*types.ActionItem{}
	for _, raw := range rawItems(obj, "action_items") {
		if item := normalizeActionItem(raw); item != nil {
			items = append(items, item)
		}
	}
	return items
}

// extractInvestorUpdate yields at most one draft; an empty draft means the
// transcript had nothing investor-relevant and is dropped here.
func (e *smartifyExtractor) extractInvestorUpdate(ctx context.Context, transcript string) *types.InvestorUpdate {
	obj, err := e.ai.GenerateJSON(ctx, investorUpdateSystemPrompt, transcriptUserPrompt(transcript), string(promptInvestorUpdate), investorUpdateSchema())
	if err != nil {
		e.log.Warn("Investor update extraction failed, treating as zero items", "error", err)
		return nil
	}
	raw := rawObject(obj, "update")
	if raw == nil {
		return nil
	}
	return normalizeInvestorUpdate(raw)
}

func (e *smartifyExtractor) extractProgressLog(ctx context.Context, transcript string) *types.ProgressLog {
	obj, err := e.ai.GenerateJSON(ctx, progressLogSystemPrompt, transcriptUserPrompt(transcript), string(promptProgressLog), progressLogSchema())
	if err != nil {
		e.log.Warn("Progress log extraction failed, treating as zero items", "error", err)
		return nil
	}
	raw := rawObject(obj, "progress")
	if raw == nil {
		return nil
	}
	return normalizeProgressLog(raw, e.now())
}

func (e *smartifyExtractor) extractProductIdeas(ctx context.Context, transcript string) []*types.ProductIdea {
	obj, err := e.ai.GenerateJSON(ctx, productIdeasSystemPrompt, transcriptUserPrompt(transcript), string(promptProductIdeas), productIdeasSchema())
	if err != nil {
		e.log.Warn("Product idea extraction failed, treating as zero items", "error", err)
		return []*types.ProductIdea{}
	}
	ideas := []*types.ProductIdea{}
	for _, raw := range rawItems(obj, "ideas") {
		if idea := normalizeProductIdea(raw); idea != nil {
			ideas = append(ideas, idea)
		}
	}
	return ideas
}

func (e *smartifyExtractor) extractBrainDump(ctx context.Context, transcript string) []*types.BrainDumpEntry {
	obj, err := e.ai.GenerateJSON(ctx, brainDumpSystemPrompt, transcriptUserPrompt(transcript), string(promptBrainDump), brainDumpSchema())
	if err != nil {
		e.log.Warn("Brain dump extraction failed, treating as zero items", "error", err)
		return []*types.BrainDumpEntry{}
	}
	entries := []*types.BrainDumpEntry{}
	for _, raw := range rawItems(obj, "items") {
		if entry := normalizeBrainDumpEntry(raw); entry != nil {
			entries = append(entries, entry)
		}
	}
	return entries
}
