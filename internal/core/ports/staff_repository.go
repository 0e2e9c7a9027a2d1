package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
)

// StaffRepository is the persistence contract for staff aggregates.
//
// Removed members leave a tombstone behind so that lookups can answer
// staff.ErrStaffRemoved instead of a plain not-found, which matters for
// profile views of members that used to exist.
type StaffRepository interface {
	// Add registers a new member. Fails with staff.ErrDuplicateStaff when
	// the id is already registered. Re-registering a removed id is allowed
	// and clears the tombstone.
	Add(ctx context.Context, m *staff.StaffMember) error

	// Update persists changes to an existing member.
	Update(ctx context.Context, m *staff.StaffMember) error

	// Get retrieves a member by id. Returns staff.ErrStaffRemoved for
	// tombstoned ids and an error unwrapping to errs.ErrObjectNotFound for
	// ids that never existed.
	Get(ctx context.Context, id kernel.UUID) (*staff.StaffMember, error)

	// Remove deletes a member and records a tombstone. The busy check is
	// the command layer's responsibility; the repository only requires the
	// member to exist.
	Remove(ctx context.Context, id kernel.UUID) error

	// GetAllAvailable retrieves the on-duty, unbound members of a role in
	// ascending id order, so agent selection is deterministic for a given
	// pool snapshot.
	GetAllAvailable(ctx context.Context, role staff.Role) ([]*staff.StaffMember, error)
}
