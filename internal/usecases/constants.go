package usecases

import "math/bits"

// Fee configuration. The platform takes 0.5% of every milestone amount,
// expressed in per-mille to keep the arithmetic integral.
const (
	PlatformFeePerMille = 5
	PerMilleDenominator = 1000
)

// Input bounds
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxPercentage        = 100
)

// Sweep batch size for the overdue-milestone job
const OverdueSweepBatchSize = 100

// mulDiv computes floor(value * numerator / denominator) through a 128-bit
// intermediate, so wei-scale values cannot overflow the product. Every call
// site keeps numerator <= denominator, which bounds the quotient by value
// and keeps it inside uint64.
func mulDiv(value, numerator, denominator uint64) uint64 {
	hi, lo := bits.Mul64(value, numerator)
	quotient, _ := bits.Div64(hi, lo, denominator)
	return quotient
}

// MilestoneAmount computes the slice of accumulated funding a milestone
// unlocks. Integer floor division; residual fractions stay in escrow as dust.
func MilestoneAmount(currentFunding uint64, percentage uint32) uint64 {
	return mulDiv(currentFunding, uint64(percentage), MaxPercentage)
}

// SplitPayout divides a milestone amount into the platform fee and the
// creator's share. fee = floor(amount * 5 / 1000), creator gets the rest.
func SplitPayout(milestoneAmount uint64) (creatorAmount, platformFee uint64) {
	platformFee = mulDiv(milestoneAmount, PlatformFeePerMille, PerMilleDenominator)
	creatorAmount = milestoneAmount - platformFee
	return creatorAmount, platformFee
}

// ProratedRefund computes a backer's share of the escrow still held,
// floor(amount * escrowBalance / outstanding). The escrow balance never
// exceeds the outstanding contributions, so the refund never exceeds the
// original amount.
func ProratedRefund(amount, escrowBalance, outstanding uint64) uint64 {
	return mulDiv(amount, escrowBalance, outstanding)
}
