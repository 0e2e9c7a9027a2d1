package memstore

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
)

// StaffView adapts the store to the query side's StaffReader. The store's
// own Get reads orders, so the staff read needs its own receiver.
type StaffView struct {
	store *Store
}

// NewStaffView creates a staff read view over the store.
func NewStaffView(store *Store) StaffView {
	return StaffView{store: store}
}

// Get reads one committed staff member.
func (v StaffView) Get(ctx context.Context, id kernel.UUID) (*staff.StaffMember, error) {
	return v.store.GetStaff(ctx, id)
}
