package blockchain

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// BookLedger is a deterministic in-memory implementation of the escrow
// transfer primitive. It backs local development and tests, and mirrors the
// semantics the EVM ledger provides on chain: a transfer either fully applies
// or fails, and the escrow account can never go negative.
type BookLedger struct {
	mu          sync.Mutex
	balances    map[string]uint64
	escrow      uint64
	seq         uint64
	faucetGrant uint64
}

func NewBookLedger() *BookLedger {
	return &BookLedger{balances: make(map[string]uint64)}
}

// NewFaucetLedger returns a book ledger that seeds every unseen account with
// grant on its first deposit, so local backers start funded.
func NewFaucetLedger(grant uint64) *BookLedger {
	l := NewBookLedger()
	l.faucetGrant = grant
	return l
}

// Credit seeds an account balance. Dev/test helper; on the EVM ledger the
// chain itself funds accounts.
func (l *BookLedger) Credit(account string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
}

// Balance returns an account's current balance
func (l *BookLedger) Balance(account string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account]
}

// EscrowBalance returns the total value currently held in escrow
func (l *BookLedger) EscrowBalance() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.escrow
}

// Deposit moves value from an account into escrow
func (l *BookLedger) Deposit(ctx context.Context, from string, amount uint64) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, seen := l.balances[from]; !seen && l.faucetGrant > 0 {
		l.balances[from] = l.faucetGrant
	}
	if l.balances[from] < amount {
		return "", fmt.Errorf("insufficient balance for %s: have %d, need %d", from, l.balances[from], amount)
	}
	l.balances[from] -= amount
	l.escrow += amount
	return l.nextTxHash(), nil
}

// Payout moves value from escrow to an account
func (l *BookLedger) Payout(ctx context.Context, to string, amount uint64) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.escrow < amount {
		return "", fmt.Errorf("escrow underflow: have %d, need %d", l.escrow, amount)
	}
	l.escrow -= amount
	l.balances[to] += amount
	return l.nextTxHash(), nil
}

func (l *BookLedger) nextTxHash() string {
	l.seq++
	return fmt.Sprintf("book-tx-%d", l.seq)
}

// ManualClock is a test/dev height clock advanced by hand
type ManualClock struct {
	mu     sync.Mutex
	height uint64
}

func NewManualClock(height uint64) *ManualClock {
	return &ManualClock{height: height}
}

func (c *ManualClock) CurrentHeight(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height, nil
}

// SetHeight moves the clock to the given height
func (c *ManualClock) SetHeight(height uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height = height
}

// Advance moves the clock forward by delta
func (c *ManualClock) Advance(delta uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height += delta
}

// TickingClock derives the height from wall time: one unit per interval since
// start. Dev companion for the book ledger; production uses the chain's
// block number.
type TickingClock struct {
	start    time.Time
	interval time.Duration
}

func NewTickingClock(interval time.Duration) *TickingClock {
	return &TickingClock{start: time.Now(), interval: interval}
}

func (c *TickingClock) CurrentHeight(ctx context.Context) (uint64, error) {
	return uint64(time.Since(c.start) / c.interval), nil
}
