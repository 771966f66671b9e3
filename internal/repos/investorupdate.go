package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

type InvestorUpdateRepo interface {
	Create(ctx context.Context, tx *gorm.DB, updates []*types.InvestorUpdate) ([]*types.InvestorUpdate, error)
	GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.InvestorUpdate, error)
}

type investorUpdateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInvestorUpdateRepo(db *gorm.DB, baseLog *logger.Logger) InvestorUpdateRepo {
	return &investorUpdateRepo{db: db, log: baseLog.With("repo", "InvestorUpdateRepo")}
}

func (r *investorUpdateRepo) Create(ctx context.Context, tx *gorm.DB, updates []*types.InvestorUpdate) ([]*types.InvestorUpdate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(updates) == 0 {
		return []*types.InvestorUpdate{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

func (r *investorUpdateRepo) GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.InvestorUpdate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.InvestorUpdate
	if err := transaction.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
