package memstore

import (
	"context"
	"sort"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// StaffRepository is the transaction-bound staff repository. Removal leaves
// a tombstone so later lookups answer "was removed" instead of "never
// existed"; registering the same id again clears the tombstone.
type StaffRepository struct {
	uow *UnitOfWork
}

// Add stages a new member. Re-registering a removed id revives it.
func (r *StaffRepository) Add(_ context.Context, m *staff.StaffMember) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	key := m.ID().String()
	if _, ok := r.lookup(key); ok {
		return staff.ErrDuplicateStaff
	}

	r.uow.pendingStaff[key] = staffFromDomain(m)
	r.uow.pendingTombstones[key] = false
	return nil
}

// Update stages changes to an existing member.
func (r *StaffRepository) Update(_ context.Context, m *staff.StaffMember) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	key := m.ID().String()
	if _, ok := r.lookup(key); !ok {
		return errs.NewObjectNotFoundError("staffID", key)
	}

	r.uow.pendingStaff[key] = staffFromDomain(m)
	return nil
}

// Get reads one member through the staging overlay.
func (r *StaffRepository) Get(_ context.Context, id kernel.UUID) (*staff.StaffMember, error) {
	if err := r.ensureActive(); err != nil {
		return nil, err
	}

	key := id.String()
	dto, ok := r.lookup(key)
	if !ok {
		if r.removed(key) {
			return nil, staff.ErrStaffRemoved
		}
		return nil, errs.NewObjectNotFoundError("staffID", key)
	}
	return staffToDomain(dto)
}

// Remove stages the member's removal and tombstone.
func (r *StaffRepository) Remove(_ context.Context, id kernel.UUID) error {
	if err := r.ensureActive(); err != nil {
		return err
	}

	key := id.String()
	if _, ok := r.lookup(key); !ok {
		return errs.NewObjectNotFoundError("staffID", key)
	}

	delete(r.uow.pendingStaff, key)
	r.uow.pendingTombstones[key] = true
	return nil
}

// GetAllAvailable reads the on-duty, unbound members of a role in ascending
// id order.
func (r *StaffRepository) GetAllAvailable(_ context.Context, role staff.Role) ([]*staff.StaffMember, error) {
	if err := r.ensureActive(); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(r.uow.store.staff)+len(r.uow.pendingStaff))
	seen := make(map[string]bool)
	for key := range r.uow.store.staff {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	for key := range r.uow.pendingStaff {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	available := make([]*staff.StaffMember, 0)
	for _, key := range keys {
		dto, ok := r.lookup(key)
		if !ok {
			continue
		}
		m, err := staffToDomain(dto)
		if err != nil {
			return nil, err
		}
		if m.Role() == role && m.IsAvailable() {
			available = append(available, m)
		}
	}
	return available, nil
}

func (r *StaffRepository) ensureActive() error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	return nil
}

func (r *StaffRepository) lookup(key string) (ports.StaffSnapshot, bool) {
	return r.uow.lookupStaff(key)
}

func (r *StaffRepository) removed(key string) bool {
	if tombstone, ok := r.uow.pendingTombstones[key]; ok {
		return tombstone
	}
	return r.uow.store.removedStaff[key]
}
