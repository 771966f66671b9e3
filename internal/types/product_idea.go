package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdeaCategoryFeature     = "feature"
	IdeaCategoryImprovement = "improvement"
	IdeaCategoryIntegration = "integration"
	IdeaCategoryPivot       = "pivot"
	IdeaCategoryExperiment  = "experiment"
	IdeaCategoryNewProduct  = "new_product"

	IdeaStatusIdea = "idea"
)

type ProductIdea struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RecordingID uuid.UUID  `gorm:"type:uuid;not null;index" json:"recording_id"`
	Recording   *Recording `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecordingID;references:ID" json:"recording,omitempty"`
	Idea        string     `gorm:"column:idea;not null" json:"idea"`
	Category    string     `gorm:"column:category;not null;default:'feature';index" json:"category"`
	Priority    string     `gorm:"column:priority;not null;default:'medium';index" json:"priority"`
	Context     *string    `gorm:"column:context" json:"context,omitempty"`
	Status      string     `gorm:"column:status;not null;default:'idea';index" json:"status"`
	Votes       int        `gorm:"column:votes;not null;default:0" json:"votes"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProductIdea) TableName() string { return "product_idea" }
