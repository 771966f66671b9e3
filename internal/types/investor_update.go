package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	UpdateStatusDraft = "draft"
	UpdateStatusSent  = "sent"
)

// InvestorUpdate is a generated draft, one per extraction at most. Wins,
// challenges and asks are string arrays; metrics is a free-form
// string-keyed object, all stored as jsonb.
type InvestorUpdate struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RecordingID uuid.UUID      `gorm:"type:uuid;not null;index" json:"recording_id"`
	Recording   *Recording     `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecordingID;references:ID" json:"recording,omitempty"`
	Subject     string         `gorm:"column:subject" json:"subject"`
	Body        string         `gorm:"column:body;type:text" json:"body"`
	Wins        datatypes.JSON `gorm:"type:jsonb;column:wins" json:"wins"`
	Metrics     datatypes.JSON `gorm:"type:jsonb;column:metrics" json:"metrics"`
	Challenges  datatypes.JSON `gorm:"type:jsonb;column:challenges" json:"challenges"`
	Asks        datatypes.JSON `gorm:"type:jsonb;column:asks" json:"asks"`
	Status      string         `gorm:"column:status;not null;default:'draft';index" json:"status"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (InvestorUpdate) TableName() string { return "investor_update" }
