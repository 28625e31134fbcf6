package repositories

import (
	"context"
)

// UnitOfWork runs a function within a single atomic scope. Every mutating
// operation executes inside Do so that validation failures, repository errors
// and ledger transfer failures all unwind together with no partial writes.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
