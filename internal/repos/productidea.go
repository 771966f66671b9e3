package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/smartnotes-backend/internal/logger"
	"github.com/yungbote/smartnotes-backend/internal/types"
)

type ProductIdeaRepo interface {
	Create(ctx context.Context, tx *gorm.DB, ideas []*types.ProductIdea) ([]*types.ProductIdea, error)
	GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.ProductIdea, error)
}

type productIdeaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductIdeaRepo(db *gorm.DB, baseLog *logger.Logger) ProductIdeaRepo {
	return &productIdeaRepo{db: db, log: baseLog.With("repo", "ProductIdeaRepo")}
}

func (r *productIdeaRepo) Create(ctx context.Context, tx *gorm.DB, ideas []*types.ProductIdea) ([]*types.ProductIdea, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(ideas) == 0 {
		return []*types.ProductIdea{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *productIdeaRepo) GetByRecordingID(ctx context.Context, tx *gorm.DB, recordingID uuid.UUID) ([]*types.ProductIdea, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ProductIdea
	if err := transaction.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
