package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

type RecordingRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rec *types.Recording) (*types.Recording, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recording, error)
	UpdateTranscript(ctx context.Context, tx *gorm.DB, id uuid.UUID, transcript string) error
	MarkSmartified(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error
}

type recordingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecordingRepo(db *gorm.DB, baseLog *logger.Logger) RecordingRepo {
	return &recordingRepo{db: db, log: baseLog.With("repo", "RecordingRepo")}
}

func (r *recordingRepo) Create(ctx context.Context, tx *gorm.DB, rec *types.Recording) (*types.Recording, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *recordingRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Recording, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var rec types.Recording
	if err := transaction.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recordingRepo) UpdateTranscript(ctx context.Context, tx *gorm.DB, id uuid.UUID, transcript string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	// updated_at moves forward here, which is what re-enables extraction.
	return transaction.WithContext(ctx).
		Model(&types.Recording{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"transcript": transcript,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *recordingRepo) MarkSmartified(ctx context.Context, tx *gorm.DB, id uuid.UUID, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	// Only smartified_at: bumping updated_at here would immediately make
	// the recording look stale again.
	return transaction.WithContext(ctx).
		Model(&types.Recording{}).
		Where("id = ?", id).
		UpdateColumn("smartified_at", at).Error
}
