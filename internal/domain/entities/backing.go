package entities

// Backing records a single backer's contribution to a project, keyed by
// (project id, backer). A backer may contribute at most once per project;
// re-backing is rejected, not accumulated.
type Backing struct {
	ProjectID      uint64 `json:"projectId"`
	Backer         string `json:"backer"`
	Amount         uint64 `json:"amount"`
	Refunded       bool   `json:"refunded"`
	RefundedAmount uint64 `json:"refundedAmount,omitempty"`
}

// Reviewer marks an identity the creator authorized to approve milestones.
// Only meaningful for reviewer-mode projects.
type Reviewer struct {
	ProjectID uint64 `json:"projectId"`
	Reviewer  string `json:"reviewer"`
	Active    bool   `json:"active"`
}

// Vote is one backer's immutable vote on a milestone, keyed by
// (project id, milestone index, voter). Unweighted: one vote per backer
// regardless of contribution size.
type Vote struct {
	ProjectID      uint64 `json:"projectId"`
	MilestoneIndex uint32 `json:"milestoneIndex"`
	Voter          string `json:"voter"`
	Approve        bool   `json:"approve"`
}
