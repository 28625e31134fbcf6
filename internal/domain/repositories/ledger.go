package repositories

import (
	"context"
)

// EscrowLedger wraps the external atomic value-transfer primitive. Each call
// either fully succeeds or fully fails; a failure aborts the surrounding
// operation. Amounts are in the ledger's smallest unit.
type EscrowLedger interface {
	// Deposit moves value from a backer into escrow.
	Deposit(ctx context.Context, from string, amount uint64) (txHash string, err error)
	// Payout moves value from escrow to a recipient (creator, treasury, or a
	// refunded backer).
	Payout(ctx context.Context, to string, amount uint64) (txHash string, err error)
}

// HeightClock supplies the external monotonic block height used for all
// deadline comparisons. There are no active timers; expiry is observed lazily.
type HeightClock interface {
	CurrentHeight(ctx context.Context) (uint64, error)
}
