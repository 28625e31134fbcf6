package models

import (
	"time"
)

// Project is the persisted project record. The autoincrement primary key is
// the registry-owned id sequence; nothing else assigns project ids.
type Project struct {
	ID                    uint64 `gorm:"primaryKey;autoIncrement"`
	Creator               string `gorm:"type:varchar(255);not null;index"`
	Title                 string `gorm:"type:varchar(200);not null"`
	Description           string `gorm:"type:text"`
	Goal                  uint64 `gorm:"not null"`
	CurrentFunding        uint64 `gorm:"not null;default:0"`
	EscrowBalance         uint64 `gorm:"not null;default:0"`
	RefundedContributions uint64 `gorm:"not null;default:0"`
	Status                string `gorm:"type:varchar(50);not null;index"`
	Mode                  string `gorm:"type:varchar(50);not null"`
	FundingDeadline       uint64 `gorm:"not null"`
	MilestoneCount        uint32 `gorm:"not null;default:0"`
	NextMilestone         uint32 `gorm:"not null;default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Milestone is keyed by (project id, index); the unique index keeps the
// sequence dense per project.
type Milestone struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	ProjectID     uint64 `gorm:"not null;uniqueIndex:idx_milestone_key,priority:1"`
	Idx           uint32 `gorm:"column:idx;not null;uniqueIndex:idx_milestone_key,priority:2"`
	Title         string `gorm:"type:varchar(200);not null"`
	Description   string `gorm:"type:text"`
	Percentage    uint32 `gorm:"not null"`
	Deadline      uint64 `gorm:"not null;index"`
	Status        string `gorm:"type:varchar(50);not null;index"`
	Approvals     uint32 `gorm:"not null;default:0"`
	Rejections    uint32 `gorm:"not null;default:0"`
	FundsReleased bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
