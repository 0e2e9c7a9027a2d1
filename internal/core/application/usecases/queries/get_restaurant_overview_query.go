package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetRestaurantOverviewQueryIsNotConstructed = errors.New(
	"GetRestaurantOverviewQuery must be created via NewGetRestaurantOverviewQuery constructor",
)

// GetRestaurantOverviewQuery retrieves the manager's dashboard numbers:
// order counts per lifecycle state.
type GetRestaurantOverviewQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantOverviewQuery creates a parameterless overview query.
func NewGetRestaurantOverviewQuery() GetRestaurantOverviewQuery {
	return GetRestaurantOverviewQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOverviewQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOverviewQueryIsNotConstructed)
}

// GetRestaurantOverviewQueryResponse aggregates the order store by state.
// ByStatus is keyed by the status display name.
type GetRestaurantOverviewQueryResponse struct {
	TotalOrders  int
	ActiveOrders int
	ByStatus     map[string]int
}
