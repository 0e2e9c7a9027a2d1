// Package queries contains read-only operations over the order store and
// staff registry. Queries never mutate state and never take the write lock
// for longer than a single snapshot read.
package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
)

// Reader interfaces give query handlers direct access to committed state,
// bypassing the unit of work used on the write side.
type (
	// OrderReader reads committed orders.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
		GetCurrentByStaff(ctx context.Context, staffID kernel.UUID) (*order.Order, error)
		GetAll(ctx context.Context) ([]*order.Order, error)
	}

	// StaffReader reads committed staff members.
	StaffReader interface {
		Get(ctx context.Context, id kernel.UUID) (*staff.StaffMember, error)
	}
)
