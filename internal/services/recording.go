package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/apierr"
	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/repos"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

// RecordingService is the door the external capture/transcription flow
// comes through: it creates recordings with finished transcripts and can
// correct a transcript later (which re-enables extraction).
type RecordingService interface {
	Create(ctx context.Context, title, transcript string, durationSeconds int) (*types.Recording, error)
	GetWithExtractions(ctx context.Context, id uuid.UUID) (*RecordingDetail, error)
	UpdateTranscript(ctx context.Context, id uuid.UUID, transcript string) (*types.Recording, error)
}

type RecordingDetail struct {
	Recording       *types.Recording        `json:"recording"`
	ActionItems     []*types.ActionItem     `json:"action_items"`
	InvestorUpdates []*types.InvestorUpdate `json:"investor_updates"`
	ProgressLogs    []*types.ProgressLog    `json:"progress_logs"`
	ProductIdeas    []*types.ProductIdea    `json:"product_ideas"`
	BrainDump       []*types.BrainDumpEntry `json:"brain_dump"`
}

type recordingService struct {
	db  *gorm.DB
	log *logger.Logger

	recordingRepo      repos.RecordingRepo
	actionItemRepo     repos.ActionItemRepo
	investorUpdateRepo repos.InvestorUpdateRepo
	progressLogRepo    repos.ProgressLogRepo
	productIdeaRepo    repos.ProductIdeaRepo
	brainDumpRepo      repos.BrainDumpRepo
}

func NewRecordingService(
	db *gorm.DB,
	log *logger.Logger,
	recordingRepo repos.RecordingRepo,
	actionItemRepo repos.ActionItemRepo,
	investorUpdateRepo repos.InvestorUpdateRepo,
	progressLogRepo repos.ProgressLogRepo,
	productIdeaRepo repos.ProductIdeaRepo,
	brainDumpRepo repos.BrainDumpRepo,
) RecordingService {
	return &recordingService{
		db:                 db,
		log:                log.With("service", "RecordingService"),
		recordingRepo:      recordingRepo,
		actionItemRepo:     actionItemRepo,
		investorUpdateRepo: investorUpdateRepo,
		progressLogRepo:    progressLogRepo,
		productIdeaRepo:    productIdeaRepo,
		brainDumpRepo:      brainDumpRepo,
	}
}

func (s *recordingService) Create(ctx context.Context, title, transcript string, durationSeconds int) (*types.Recording, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, apierr.New(http.StatusBadRequest, "empty_transcript", errors.New("transcript is required"))
	}
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	rec := &types.Recording{
		Title:           strings.TrimSpace(title),
		Transcript:      transcript,
		DurationSeconds: durationSeconds,
	}
	created, err := s.recordingRepo.Create(ctx, nil, rec)
	if err != nil {
		return nil, fmt.Errorf("create recording: %w", err)
	}
	s.log.Info("Recording created", "recording_id", created.ID, "transcript_len", len(transcript))
	return created, nil
}

func (s *recordingService) GetWithExtractions(ctx context.Context, id uuid.UUID) (*RecordingDetail, error) {
	rec, err := s.recordingRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.New(http.StatusNotFound, "recording_not_found", err)
		}
		return nil, fmt.Errorf("load recording: %w", err)
	}

	detail := &RecordingDetail{Recording: rec}
	if detail.ActionItems, err = s.actionItemRepo.GetByRecordingID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("load action items: %w", err)
	}
	if detail.InvestorUpdates, err = s.investorUpdateRepo.GetByRecordingID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("load investor updates: %w", err)
	}
	if detail.ProgressLogs, err = s.progressLogRepo.GetByRecordingID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("load progress logs: %w", err)
	}
	if detail.ProductIdeas, err = s.productIdeaRepo.GetByRecordingID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("load product ideas: %w", err)
	}
	if detail.BrainDump, err = s.brainDumpRepo.GetByRecordingID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("load brain dump entries: %w", err)
	}
	return detail, nil
}

func (s *recordingService) UpdateTranscript(ctx context.Context, id uuid.UUID, transcript string) (*types.Recording, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, apierr.New(http.StatusBadRequest, "empty_transcript", errors.New("transcript is required"))
	}
	if _, err := s.recordingRepo.GetByID(ctx, nil, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.New(http.StatusNotFound, "recording_not_found", err)
		}
		return nil, fmt.Errorf("load recording: %w", err)
	}
	if err := s.recordingRepo.UpdateTranscript(ctx, nil, id, transcript); err != nil {
		return nil, fmt.Errorf("update transcript: %w", err)
	}
	rec, err := s.recordingRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("reload recording: %w", err)
	}
	return rec, nil
}
