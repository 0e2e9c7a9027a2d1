package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, keeping
// concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a single business action.
//
// With the in-memory store, Begin acquires the store-wide lock and
// Commit/Rollback release it, which makes every command an atomic
// validate+mutate step: a rejected action leaves no observable change.
// Client code must call Begin before touching a repository and must release
// on every exit path (the handlers do this with a deferred Rollback).
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit publishes all staged changes. Fails when no transaction is
	// active.
	Commit(ctx context.Context) error

	// Rollback discards all staged changes. Returns an error when no
	// transaction is active, which handlers ignore in their deferred call
	// after a successful commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to this transaction.
	OrderRepository() OrderRepository

	// StaffRepository returns a staff repository bound to this transaction.
	StaffRepository() StaffRepository
}
