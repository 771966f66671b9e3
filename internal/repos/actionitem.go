package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

type ActionItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.ActionItem) ([]*types.ActionItem, error)
	GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.ActionItem, error)
}

type actionItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActionItemRepo(db *gorm.DB, baseLog *logger.Logger) ActionItemRepo {
	return &actionItemRepo{db: db, log: baseLog.With("repo", "ActionItemRepo")}
}

func (r *actionItemRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.ActionItem) ([]*types.ActionItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(items) == 0 {
		return []*types.ActionItem{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *actionItemRepo) GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.ActionItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ActionItem
	if err := transaction.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
