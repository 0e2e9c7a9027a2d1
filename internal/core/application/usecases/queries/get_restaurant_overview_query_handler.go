package queries

import (
	"context"
)

// GetRestaurantOverviewQueryHandler computes the manager's dashboard from a
// single pass over the order store.
type GetRestaurantOverviewQueryHandler struct {
	orders OrderReader
}

// NewGetRestaurantOverviewQueryHandler creates a handler for overview
// queries.
func NewGetRestaurantOverviewQueryHandler(orders OrderReader) GetRestaurantOverviewQueryHandler {
	return GetRestaurantOverviewQueryHandler{orders: orders}
}

// Handle executes the query.
func (h GetRestaurantOverviewQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOverviewQuery,
) (GetRestaurantOverviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantOverviewQueryResponse{}, err
	}

	allOrders, err := h.orders.GetAll(ctx)
	if err != nil {
		return GetRestaurantOverviewQueryResponse{}, err
	}

	response := GetRestaurantOverviewQueryResponse{
		ByStatus: make(map[string]int),
	}
	for _, o := range allOrders {
		response.TotalOrders++
		response.ByStatus[o.Status().String()]++
		if !o.Status().IsTerminal() {
			response.ActiveOrders++
		}
	}

	return response, nil
}
