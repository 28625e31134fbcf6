package entities

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusFunding   ProjectStatus = "funding"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// VerificationMode selects how milestones are approved. Exactly two fixed
// strategies exist, so this is a tagged variant rather than an open interface.
type VerificationMode string

const (
	VerificationModeVoting   VerificationMode = "voting"
	VerificationModeReviewer VerificationMode = "reviewer"
)

// ValidVerificationMode reports whether m is one of the two supported modes
func ValidVerificationMode(m VerificationMode) bool {
	return m == VerificationModeVoting || m == VerificationModeReviewer
}

// Project represents a crowdfunded project and its escrow accounting.
// CurrentFunding only ever increases; EscrowBalance tracks value still held
// between contribution and release/refund.
type Project struct {
	ID                    uint64           `json:"id"`
	Creator               string           `json:"creator"`
	Title                 string           `json:"title"`
	Description           string           `json:"description"`
	Goal                  uint64           `json:"goal"`
	CurrentFunding        uint64           `json:"currentFunding"`
	EscrowBalance         uint64           `json:"escrowBalance"`
	RefundedContributions uint64           `json:"refundedContributions"`
	Status                ProjectStatus    `json:"status"`
	Mode                  VerificationMode `json:"mode"`
	FundingDeadline       uint64           `json:"fundingDeadline"` // block height
	MilestoneCount        uint32           `json:"milestoneCount"`
	NextMilestone         uint32           `json:"nextMilestone"`
}

// IsOpenForFunding reports whether the project accepts contributions at the
// given height
func (p *Project) IsOpenForFunding(height uint64) bool {
	return p.Status == ProjectStatusFunding && height <= p.FundingDeadline
}

// GoalReached reports whether accumulated funding meets the goal
func (p *Project) GoalReached() bool {
	return p.CurrentFunding >= p.Goal
}

// OutstandingContributions is the contribution value that has not been
// refunded yet. Refund proration divides the remaining escrow across it.
func (p *Project) OutstandingContributions() uint64 {
	if p.RefundedContributions >= p.CurrentFunding {
		return 0
	}
	return p.CurrentFunding - p.RefundedContributions
}
