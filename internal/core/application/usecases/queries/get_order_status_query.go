package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the lifecycle state of one order, scoped to
// the customer who placed it. Another customer's order answers with a
// forbidden error, not a not-found, so the existence of the order id is not
// leaked either way before the ownership check passes.
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for a customer's view of an order.
func NewGetOrderStatusQuery(customerID, orderID kernel.UUID) (GetOrderStatusQuery, error) {
	statusQuery := GetOrderStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusQuery.setCustomerID(customerID),
		statusQuery.setOrderID(orderID),
	); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return statusQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// CustomerID returns the asking customer's identifier.
func (q GetOrderStatusQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderID returns the requested order's identifier.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderStatusQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

func (q *GetOrderStatusQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderStatusQueryResponse is the customer's view of an order: the
// lifecycle state plus the current time estimates.
type GetOrderStatusQueryResponse struct {
	ID           kernel.UUID
	Status       order.Status
	Kind         order.Kind
	PrepTime     kernel.Minutes
	DeliveryTime kernel.Minutes
}
