package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

type BrainDumpRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.BrainDumpEntry) ([]*types.BrainDumpEntry, error)
	GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.BrainDumpEntry, error)
}

type brainDumpRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBrainDumpRepo(db *gorm.DB, baseLog *logger.Logger) BrainDumpRepo {
	return &brainDumpRepo{db: db, log: baseLog.With("repo", "BrainDumpRepo")}
}

func (r *brainDumpRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.BrainDumpEntry) ([]*types.BrainDumpEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(entries) == 0 {
		return []*types.BrainDumpEntry{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *brainDumpRepo) GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.BrainDumpEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.BrainDumpEntry
	if err := transaction.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
