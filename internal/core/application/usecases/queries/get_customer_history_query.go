package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetCustomerHistoryQueryIsNotConstructed = errors.New(
	"GetCustomerHistoryQuery must be created via NewGetCustomerHistoryQuery constructor",
)

// GetCustomerHistoryQuery retrieves every order a customer ever placed,
// terminal ones included.
type GetCustomerHistoryQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerHistoryQuery creates a query for a customer's order history.
func NewGetCustomerHistoryQuery(customerID kernel.UUID) (GetCustomerHistoryQuery, error) {
	historyQuery := GetCustomerHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := historyQuery.setCustomerID(customerID); err != nil {
		return GetCustomerHistoryQuery{}, err
	}

	return historyQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerHistoryQueryIsNotConstructed)
}

// CustomerID returns the asking customer's identifier.
func (q GetCustomerHistoryQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerHistoryQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// GetCustomerHistoryQueryResponse is one order in a customer's history.
type GetCustomerHistoryQueryResponse struct {
	ID        kernel.UUID
	Kind      order.Kind
	Status    order.Status
	CreatedAt time.Time
}
