package models

import (
	"time"

	"github.com/google/uuid"
)

// Payout is append-only; rows are written inside the release transaction and
// never updated.
type Payout struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID       uint64    `gorm:"not null;index"`
	MilestoneIndex  uint32    `gorm:"not null"`
	MilestoneAmount uint64    `gorm:"not null"`
	PlatformFee     uint64    `gorm:"not null"`
	CreatorAmount   uint64    `gorm:"not null"`
	Creator         string    `gorm:"type:varchar(255);not null"`
	TxHash          string    `gorm:"type:varchar(255)"`
	ReleasedAt      time.Time `gorm:"not null"`
	CreatedAt       time.Time
}
