package models

import (
	"time"
)

// Backing enforces one contribution per (project, backer) at the schema level
type Backing struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	ProjectID      uint64 `gorm:"not null;uniqueIndex:idx_backing_key,priority:1"`
	Backer         string `gorm:"type:varchar(255);not null;uniqueIndex:idx_backing_key,priority:2"`
	Amount         uint64 `gorm:"not null"`
	Refunded       bool   `gorm:"not null;default:false"`
	RefundedAmount uint64 `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reviewer is keyed by (project, reviewer)
type Reviewer struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ProjectID uint64 `gorm:"not null;uniqueIndex:idx_reviewer_key,priority:1"`
	Reviewer  string `gorm:"type:varchar(255);not null;uniqueIndex:idx_reviewer_key,priority:2"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vote is keyed by (project, milestone index, voter); rows are immutable
type Vote struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	ProjectID      uint64 `gorm:"not null;uniqueIndex:idx_vote_key,priority:1"`
	MilestoneIndex uint32 `gorm:"not null;uniqueIndex:idx_vote_key,priority:2"`
	Voter          string `gorm:"type:varchar(255);not null;uniqueIndex:idx_vote_key,priority:3"`
	Approve        bool   `gorm:"not null"`
	CreatedAt      time.Time
}
