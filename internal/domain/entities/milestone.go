package entities

// MilestoneStatus represents the per-milestone sub-state
type MilestoneStatus string

const (
	MilestoneStatusPending  MilestoneStatus = "pending"
	MilestoneStatusActive   MilestoneStatus = "active"
	MilestoneStatusInReview MilestoneStatus = "in_review"
	MilestoneStatusFailed   MilestoneStatus = "failed"
)

// Milestone is one percentage-funded deliverable of a project, keyed by
// (project id, index). Indices are dense, zero-based and creation-ordered.
// A released milestone stays in_review with FundsReleased set; release is
// terminal via the flag, not a status.
type Milestone struct {
	ProjectID     uint64          `json:"projectId"`
	Index         uint32          `json:"index"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Percentage    uint32          `json:"percentage"` // 1-100, share of CurrentFunding
	Deadline      uint64          `json:"deadline"`   // block height
	Status        MilestoneStatus `json:"status"`
	Approvals     uint32          `json:"approvals"`
	Rejections    uint32          `json:"rejections"`
	FundsReleased bool            `json:"fundsReleased"`
}

// Overdue reports whether the milestone missed its deadline while still
// awaiting submission
func (m *Milestone) Overdue(height uint64) bool {
	return m.Status == MilestoneStatusActive && height > m.Deadline
}
