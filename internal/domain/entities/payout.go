package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Payout is the audit record written atomically with every milestone release.
// Rows are append-only and never updated.
type Payout struct {
	ID              uuid.UUID   `json:"id"`
	ProjectID       uint64      `json:"projectId"`
	MilestoneIndex  uint32      `json:"milestoneIndex"`
	MilestoneAmount uint64      `json:"milestoneAmount"`
	PlatformFee     uint64      `json:"platformFee"`
	CreatorAmount   uint64      `json:"creatorAmount"`
	Creator         string      `json:"creator"`
	TxHash          null.String `json:"txHash,omitempty"`
	ReleasedAt      time.Time   `json:"releasedAt"`
}
