package queries

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"
)

// GetOrderStatusQueryHandler answers a customer's "where is my order".
type GetOrderStatusQueryHandler struct {
	orders OrderReader
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
func NewGetOrderStatusQueryHandler(orders OrderReader) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{orders: orders}
}

// Handle executes the query. Unknown ids report not-found; existing orders
// owned by another customer report forbidden.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	target, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	if !target.CustomerID().IsEqual(query.CustomerID()) {
		return GetOrderStatusQueryResponse{},
			fmt.Errorf("%w: order belongs to another customer", order.ErrForbidden)
	}

	return GetOrderStatusQueryResponse{
		ID:           target.ID(),
		Status:       target.Status(),
		Kind:         target.Kind(),
		PrepTime:     target.PrepTime(),
		DeliveryTime: target.DeliveryTime(),
	}, nil
}
