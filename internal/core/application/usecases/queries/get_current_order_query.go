package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetCurrentOrderQueryIsNotConstructed = errors.New(
	"GetCurrentOrderQuery must be created via NewGetCurrentOrderQuery constructor",
)

// GetCurrentOrderQuery retrieves the order a staff member is currently
// working, if any.
type GetCurrentOrderQuery struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentOrderQuery creates a query for a staff member's active order.
func NewGetCurrentOrderQuery(staffID kernel.UUID) (GetCurrentOrderQuery, error) {
	currentQuery := GetCurrentOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := currentQuery.setStaffID(staffID); err != nil {
		return GetCurrentOrderQuery{}, err
	}

	return currentQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentOrderQueryIsNotConstructed)
}

// StaffID returns the member's identifier.
func (q GetCurrentOrderQuery) StaffID() kernel.UUID {
	return q.staffID
}

func (q *GetCurrentOrderQuery) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	q.staffID = staffID
	return nil
}

// GetCurrentOrderQueryResponse is a staff member's view of their active
// order.
type GetCurrentOrderQueryResponse struct {
	ID           kernel.UUID
	Kind         order.Kind
	Status       order.Status
	PrepTime     kernel.Minutes
	DeliveryTime kernel.Minutes
}
