package queries

import (
	"context"
)

// GetCustomerHistoryQueryHandler lists a customer's orders in placement
// order. A customer with no orders gets an empty list, not an error.
type GetCustomerHistoryQueryHandler struct {
	orders OrderReader
}

// NewGetCustomerHistoryQueryHandler creates a handler for customer history
// queries.
func NewGetCustomerHistoryQueryHandler(orders OrderReader) GetCustomerHistoryQueryHandler {
	return GetCustomerHistoryQueryHandler{orders: orders}
}

// Handle executes the query.
func (h GetCustomerHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerHistoryQuery,
) ([]GetCustomerHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customerOrders, err := h.orders.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	history := make([]GetCustomerHistoryQueryResponse, 0, len(customerOrders))
	for _, o := range customerOrders {
		history = append(history, GetCustomerHistoryQueryResponse{
			ID:        o.ID(),
			Kind:      o.Kind(),
			Status:    o.Status(),
			CreatedAt: o.CreatedAt(),
		})
	}

	return history, nil
}
