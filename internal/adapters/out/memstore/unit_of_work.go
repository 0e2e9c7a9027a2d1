package memstore

import (
	"context"
	"errors"

	"restaurant/internal/core/ports"
)

var (
	// ErrTransactionActive is returned by Begin when the unit of work
	// already holds the store lock.
	ErrTransactionActive = errors.New("transaction already active")

	// ErrNoActiveTransaction is returned by Commit and Rollback outside a
	// transaction. Handlers ignore it in their deferred Rollback after a
	// successful commit.
	ErrNoActiveTransaction = errors.New("no active transaction")
)

// UnitOfWork implements the transaction boundary over the in-memory store.
//
// Begin acquires the store-wide lock; repository writes are staged on the
// unit of work and only published by Commit. Rollback drops the staging
// area. Either way the lock is released exactly once. Because the lock
// covers validate and mutate, two concurrent placements can never claim the
// same delivery agent.
//
// A UnitOfWork is single-use and not safe for concurrent use; create one
// per command.
type UnitOfWork struct {
	store  *Store
	active bool

	pendingOrders   map[string]ports.OrderSnapshot
	pendingOrderSeq []string

	pendingStaff      map[string]ports.StaffSnapshot
	pendingTombstones map[string]bool
}

// NewUnitOfWork creates a unit of work bound to the store.
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin acquires the store lock and opens the staging area.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTransactionActive
	}

	u.store.mu.Lock()
	u.active = true
	u.pendingOrders = make(map[string]ports.OrderSnapshot)
	u.pendingOrderSeq = nil
	u.pendingStaff = make(map[string]ports.StaffSnapshot)
	u.pendingTombstones = make(map[string]bool)
	return nil
}

// Commit publishes all staged changes and releases the lock.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	defer u.release()

	for id, tombstone := range u.pendingTombstones {
		if tombstone {
			delete(u.store.staff, id)
			u.store.removedStaff[id] = true
		} else {
			delete(u.store.removedStaff, id)
		}
	}

	for id, dto := range u.pendingStaff {
		u.store.staff[id] = dto
		delete(u.store.removedStaff, id)
	}

	for _, id := range u.pendingOrderSeq {
		u.store.orderSeq = append(u.store.orderSeq, id)
	}
	for id, dto := range u.pendingOrders {
		u.store.orders[id] = dto
	}

	return nil
}

// Rollback discards all staged changes and releases the lock.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	u.release()
	return nil
}

// OrderRepository returns the order repository bound to this transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

// StaffRepository returns the staff repository bound to this transaction.
func (u *UnitOfWork) StaffRepository() ports.StaffRepository {
	return &StaffRepository{uow: u}
}

// lookupStaff resolves a member id through the staging overlay: staged
// writes win, a staged tombstone hides the committed entry.
func (u *UnitOfWork) lookupStaff(key string) (ports.StaffSnapshot, bool) {
	if dto, ok := u.pendingStaff[key]; ok {
		return dto, true
	}
	if tombstone, ok := u.pendingTombstones[key]; ok && tombstone {
		return ports.StaffSnapshot{}, false
	}
	dto, ok := u.store.staff[key]
	return dto, ok
}

func (u *UnitOfWork) release() {
	u.active = false
	u.pendingOrders = nil
	u.pendingOrderSeq = nil
	u.pendingStaff = nil
	u.pendingTombstones = nil
	u.store.mu.Unlock()
}

// UnitOfWorkFactory creates units of work over one shared store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the store.
func NewUnitOfWorkFactory(store *Store) UnitOfWorkFactory {
	return UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work.
func (f UnitOfWorkFactory) Create() *UnitOfWork {
	return NewUnitOfWork(f.store)
}
