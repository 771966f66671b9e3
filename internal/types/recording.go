package types

import (
	"time"

	"github.com/google/uuid"
)

// Recording is a dictated voice note that has already been transcribed by
// the capture flow. SmartifiedAt marks the last successful extraction;
// extraction is allowed again once UpdatedAt moves past it.
type Recording struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string     `gorm:"column:title" json:"title"`
	Transcript      string     `gorm:"column:transcript;type:text" json:"transcript"`
	DurationSeconds int        `gorm:"column:duration_seconds;default:0" json:"duration_seconds"`
	SmartifiedAt    *time.Time `gorm:"column:smartified_at;index" json:"smartified_at,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Recording) TableName() string { return "recording" }
