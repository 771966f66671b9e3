package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/apierr"
	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/repos"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

const (
	CategoryActionItems     = "action_items"
	CategoryInvestorUpdates = "investor_updates"
	CategoryProgressLogs    = "progress_logs"
	CategoryProductIdeas    = "product_ideas"
	CategoryBrainDump       = "brain_dump"
)

// ExtractionResult is the full typed output of one extraction run across
// all five categories. Investor update and progress log carry at most one
// record each.
type ExtractionResult struct {
	ActionItems    []*types.ActionItem     `json:"action_items"`
	InvestorUpdate *types.InvestorUpdate   `json:"investor_update,omitempty"`
	ProgressLog    *types.ProgressLog      `json:"progress_log,omitempty"`
	ProductIdeas   []*types.ProductIdea    `json:"product_ideas"`
	BrainDump      []*types.BrainDumpEntry `json:"brain_dump"`
}

type ExtractionCounts struct {
	ActionItems     int `json:"action_items"`
	InvestorUpdates int `json:"investor_updates"`
	ProgressLogs    int `json:"progress_logs"`
	ProductIdeas    int `json:"product_ideas"`
	BrainDump       int `json:"brain_dump"`
}

func (r *ExtractionResult) Counts() ExtractionCounts {
	c := ExtractionCounts{
		ActionItems:  len(r.ActionItems),
		ProductIdeas: len(r.ProductIdeas),
		BrainDump:    len(r.BrainDump),
	}
	if r.InvestorUpdate != nil {
		c.InvestorUpdates = 1
	}
	if r.ProgressLog != nil {
		c.ProgressLogs = 1
	}
	return c
}

func (r *ExtractionResult) Empty() bool {
	c := r.Counts()
	return c.ActionItems == 0 && c.InvestorUpdates == 0 && c.ProgressLogs == 0 && c.ProductIdeas == 0 && c.BrainDump == 0
}

type PreviewResult struct {
	Counts           ExtractionCounts  `json:"counts"`
	Items            *ExtractionResult `json:"items"`
	AlreadyProcessed bool              `json:"already_processed"`
}

type CommitResult struct {
	Extracted        ExtractionCounts `json:"extracted"`
	FailedCategories []string         `json:"failed_categories"`
	SmartifiedAt     time.Time        `json:"smartified_at"`
}

// PreviewCache lets Commit reuse the extraction a Preview already paid
// for. Keys include the recording's updated_at so a transcript edit
// between the two calls misses the cache and re-runs extraction.
type PreviewCache interface {
	Get(ctx context.Context, recordingID uuid.UUID, updatedAt time.Time) (*ExtractionResult, bool)
	Set(ctx context.Context, recordingID uuid.UUID, updatedAt time.Time, res *ExtractionResult)
	Invalidate(ctx context.Context, recordingID uuid.UUID, updatedAt time.Time)
}

type SmartifyService interface {
	Preview(ctx context.Context, recordingID uuid.UUID) (*PreviewResult, error)
	Commit(ctx context.Context, recordingID uuid.UUID) (*CommitResult, error)
}

type smartifyService struct {
	db  *gorm.DB
	log *logger.Logger

	recordingRepo      repos.RecordingRepo
	actionItemRepo     repos.ActionItemRepo
	investorUpdateRepo repos.InvestorUpdateRepo
	progressLogRepo    repos.ProgressLogRepo
	productIdeaRepo    repos.ProductIdeaRepo
	brainDumpRepo      repos.BrainDumpRepo

	extractor *smartifyExtractor
	cache     PreviewCache

	// The idempotency check is advisory; this serializes preview/commit
	// per recording so two concurrent commits on one recording can't both
	// pass it. Different recordings stay fully independent.
	locks sync.Map // uuid.UUID -> *sync.Mutex

	now func() time.Time
}

func NewSmartifyService(
	db *gorm.DB,
	log *logger.Logger,
	recordingRepo repos.RecordingRepo,
	actionItemRepo repos.ActionItemRepo,
	investorUpdateRepo repos.InvestorUpdateRepo,
	progressLogRepo repos.ProgressLogRepo,
	productIdeaRepo repos.ProductIdeaRepo,
	brainDumpRepo repos.BrainDumpRepo,
	ai OpenAIClient,
	cache PreviewCache,
) SmartifyService {
	serviceLog := log.With("service", "SmartifyService")
	return &smartifyService{
		db:                 db,
		log:                serviceLog,
		recordingRepo:      recordingRepo,
		actionItemRepo:     actionItemRepo,
		investorUpdateRepo: investorUpdateRepo,
		progressLogRepo:    progressLogRepo,
		productIdeaRepo:    productIdeaRepo,
		brainDumpRepo:      brainDumpRepo,
		extractor:          newSmartifyExtractor(serviceLog, ai, time.Now),
		cache:              cache,
		now:                time.Now,
	}
}

func (s *smartifyService) lockFor(id uuid.UUID) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *smartifyService) loadRecording(ctx context.Context, id uuid.UUID) (*types.Recording, error) {
	rec, err := s.recordingRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.New(http.StatusNotFound, "recording_not_found", err)
		}
		return nil, fmt.Errorf("load recording: %w", err)
	}
	return rec, nil
}

// runExtraction fans out to all five extractors against the same
// transcript and joins on completion. Extractors swallow their own
// failures, so the join never errors and one category's outage leaves the
// other four intact.
func (s *smartifyService) runExtraction(ctx context.Context, transcript string) *ExtractionResult {
	res := &ExtractionResult{
		ActionItems:  []*types.ActionItem{},
		ProductIdeas: []*types.ProductIdea{},
		BrainDump:    []*types.BrainDumpEntry{},
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res.ActionItems = s.extractor.extractActionItems(gctx, transcript)
		return nil
	})
	g.Go(func() error {
		res.InvestorUpdate = s.extractor.extractInvestorUpdate(gctx, transcript)
		return nil
	})
	g.Go(func() error {
		res.ProgressLog = s.extractor.extractProgressLog(gctx, transcript)
		return nil
	})
	g.Go(func() error {
		res.ProductIdeas = s.extractor.extractProductIdeas(gctx, transcript)
		return nil
	})
	g.Go(func() error {
		res.BrainDump = s.extractor.extractBrainDump(gctx, transcript)
		return nil
	})
	_ = g.Wait()
	return res
}

// Preview runs the full extraction without persisting anything. An
// already-processed recording is a documented no-op: all counts zero,
// AlreadyProcessed set, no error.
func (s *smartifyService) Preview(ctx context.Context, recordingID uuid.UUID) (*PreviewResult, error) {
	mu := s.lockFor(recordingID)
	mu.Lock()
	defer mu.Unlock()

	rec, err := s.loadRecording(ctx, recordingID)
	if err != nil {
		return nil, err
	}

	if ok, reason := canSmartify(rec); !ok {
		s.log.Info("Preview skipped", "recording_id", recordingID, "reason", reason)
		return &PreviewResult{
			Items:            &ExtractionResult{ActionItems: []*types.ActionItem{}, ProductIdeas: []*types.ProductIdea{}, BrainDump: []*types.BrainDumpEntry{}},
			AlreadyProcessed: true,
		}, nil
	}

	res := s.runExtraction(ctx, rec.Transcript)
	if s.cache != nil {
		s.cache.Set(ctx, recordingID, rec.UpdatedAt, res)
	}

	return &PreviewResult{Counts: res.Counts(), Items: res}, nil
}

// Commit persists every non-empty category and then marks the recording
// smartified exactly once, even when individual category inserts failed.
// Partial commit is accepted behavior: a retry would otherwise duplicate
// the categories that did land.
func (s *smartifyService) Commit(ctx context.Context, recordingID uuid.UUID) (*CommitResult, error) {
	mu := s.lockFor(recordingID)
	mu.Lock()
	defer mu.Unlock()

	rec, err := s.loadRecording(ctx, recordingID)
	if err != nil {
		return nil, err
	}

	if ok, reason := canSmartify(rec); !ok {
		return nil, apierr.New(http.StatusConflict, "already_processed", errors.New(reason))
	}

	var res *ExtractionResult
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, recordingID, rec.UpdatedAt); ok {
			// The cached log carries the preview-time week; a commit that
			// lands after midnight Monday belongs to the new week.
			if cached.ProgressLog != nil {
				cached.ProgressLog.WeekOf = weekOfMonday(s.now())
			}
			res = cached
		}
	}
	if res == nil {
		res = s.runExtraction(ctx, rec.Transcript)
	}

	failed := []string{}

	if len(res.ActionItems) > 0 {
		for _, item := range res.ActionItems {
			item.RecordingID = recordingID
		}
		if _, err := s.actionItemRepo.Create(ctx, nil, res.ActionItems); err != nil {
			s.log.Error("Failed to persist action items", "recording_id", recordingID, "error", err)
			failed = append(failed, CategoryActionItems)
		}
	}
	if res.InvestorUpdate != nil {
		res.InvestorUpdate.RecordingID = recordingID
		if _, err := s.investorUpdateRepo.Create(ctx, nil, []*types.InvestorUpdate{res.InvestorUpdate}); err != nil {
			s.log.Error("Failed to persist investor update", "recording_id", recordingID, "error", err)
			failed = append(failed, CategoryInvestorUpdates)
		}
	}
	if res.ProgressLog != nil {
		res.ProgressLog.RecordingID = recordingID
		if _, err := s.progressLogRepo.Create(ctx, nil, []*types.ProgressLog{res.ProgressLog}); err != nil {
			s.log.Error("Failed to persist progress log", "recording_id", recordingID, "error", err)
			failed = append(failed, CategoryProgressLogs)
		}
	}
	if len(res.ProductIdeas) > 0 {
		for _, idea := range res.ProductIdeas {
			idea.RecordingID = recordingID
		}
		if _, err := s.productIdeaRepo.Create(ctx, nil, res.ProductIdeas); err != nil {
			s.log.Error("Failed to persist product ideas", "recording_id", recordingID, "error", err)
			failed = append(failed, CategoryProductIdeas)
		}
	}
	if len(res.BrainDump) > 0 {
		for _, entry := range res.BrainDump {
			entry.RecordingID = recordingID
		}
		if _, err := s.brainDumpRepo.Create(ctx, nil, res.BrainDump); err != nil {
			s.log.Error("Failed to persist brain dump entries", "recording_id", recordingID, "error", err)
			failed = append(failed, CategoryBrainDump)
		}
	}

	smartifiedAt := s.now().UTC()
	if err := s.recordingRepo.MarkSmartified(ctx, nil, recordingID, smartifiedAt); err != nil {
		s.log.Error("Failed to mark recording smartified", "recording_id", recordingID, "error", err)
		return nil, fmt.Errorf("mark smartified: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, recordingID, rec.UpdatedAt)
	}

	// A failed category is absent from the commit result, not half-counted.
	counts := res.Counts()
	for _, category := range failed {
		switch category {
		case CategoryActionItems:
			counts.ActionItems = 0
		case CategoryInvestorUpdates:
			counts.InvestorUpdates = 0
		case CategoryProgressLogs:
			counts.ProgressLogs = 0
		case CategoryProductIdeas:
			counts.ProductIdeas = 0
		case CategoryBrainDump:
			counts.BrainDump = 0
		}
	}
	s.log.Info("Recording smartified",
		"recording_id", recordingID,
		"action_items", counts.ActionItems,
		"investor_updates", counts.InvestorUpdates,
		"progress_logs", counts.ProgressLogs,
		"product_ideas", counts.ProductIdeas,
		"brain_dump", counts.BrainDump,
		"failed_categories", failed,
	)

	return &CommitResult{
		Extracted:        counts,
		FailedCategories: failed,
		SmartifiedAt:     smartifiedAt,
	}, nil
}
