package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	ActionStatusOpen       = "open"
	ActionStatusInProgress = "in_progress"
	ActionStatusDone       = "done"
)

type ActionItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RecordingID uuid.UUID  `gorm:"type:uuid;not null;index" json:"recording_id"`
	Recording   *Recording `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecordingID;references:ID" json:"recording,omitempty"`
	Task        string     `gorm:"column:task;not null" json:"task"`
	Assignee    *string    `gorm:"column:assignee" json:"assignee,omitempty"`
	Deadline    *time.Time `gorm:"column:deadline;type:date" json:"deadline,omitempty"`
	Priority    string     `gorm:"column:priority;not null;default:'medium';index" json:"priority"`
	Status      string     `gorm:"column:status;not null;default:'open';index" json:"status"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (ActionItem) TableName() string { return "action_item" }
