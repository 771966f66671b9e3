package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProgressLog buckets a week's work, one per extraction at most.
// WeekOf always falls on the Monday of the week the commit ran in.
type ProgressLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RecordingID uuid.UUID      `gorm:"type:uuid;not null;index" json:"recording_id"`
	Recording   *Recording     `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecordingID;references:ID" json:"recording,omitempty"`
	WeekOf      time.Time      `gorm:"column:week_of;type:date;not null;index" json:"week_of"`
	Completed   datatypes.JSON `gorm:"type:jsonb;column:completed" json:"completed"`
	InProgress  datatypes.JSON `gorm:"type:jsonb;column:in_progress" json:"in_progress"`
	Blocked     datatypes.JSON `gorm:"type:jsonb;column:blocked" json:"blocked"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProgressLog) TableName() string { return "progress_log" }
