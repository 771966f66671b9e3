package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DumpCategoryMeeting  = "meeting"
	DumpCategoryBlocker  = "blocker"
	DumpCategoryDecision = "decision"
	DumpCategoryQuestion = "question"
	DumpCategoryFollowup = "followup"
)

type BrainDumpEntry struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RecordingID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"recording_id"`
	Recording    *Recording     `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecordingID;references:ID" json:"recording,omitempty"`
	Content      string         `gorm:"column:content;type:text;not null" json:"content"`
	Category     string         `gorm:"column:category;not null;index" json:"category"`
	Participants datatypes.JSON `gorm:"type:jsonb;column:participants" json:"participants"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (BrainDumpEntry) TableName() string { return "brain_dump_entry" }
