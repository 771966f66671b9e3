package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

type ProgressLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.ProgressLog) ([]*types.ProgressLog, error)
	GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.ProgressLog, error)
}

type progressLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressLogRepo(db *gorm.DB, baseLog *logger.Logger) ProgressLogRepo {
	return &progressLogRepo{db: db, log: baseLog.With("repo", "ProgressLogRepo")}
}

func (r *progressLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.ProgressLog) ([]*types.ProgressLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(logs) == 0 {
		return []*types.ProgressLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *progressLogRepo) GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.ProgressLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ProgressLog
	if err := transaction.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Order("week_of DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
