// Package ports defines the contracts between the core and its
// collaborators: repositories, the unit of work, the menu checker and the
// snapshot store. Adapters implement them; the application layer depends on
// nothing else.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates. Orders
// are never deleted; terminal orders stay queryable for history views.
type OrderRepository interface {
	// Add persists a new order. The id must not already exist.
	Add(ctx context.Context, o *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, o *order.Order) error

	// Get retrieves an order by id. Returns an error unwrapping to
	// errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves every order the customer ever placed, in
	// creation order. An empty slice is a valid result, not an error.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetCurrentByStaff retrieves the order the given chef or agent is
	// working right now, following the member's currentOrder
	// back-reference. Returns an error unwrapping to
	// errs.ErrObjectNotFound when the member is not working an order.
	GetCurrentByStaff(ctx context.Context, staffID kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order in creation order, for manager
	// overview reads.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
