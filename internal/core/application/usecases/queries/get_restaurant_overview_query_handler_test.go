package queries_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRestaurantOverviewQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	placed := newTestOrder(t, kernel.NewUUID(), order.Takeaway)
	another := newTestOrder(t, kernel.NewUUID(), order.HomeDelivery)

	pickedUp := newTestOrder(t, kernel.NewUUID(), order.Takeaway)
	chefID := kernel.NewUUID()
	prep, err := kernel.NewMinutes(10)
	require.NoError(t, err)
	require.NoError(t, pickedUp.StartPreparation(chefID, prep))
	require.NoError(t, pickedUp.MarkReady(chefID))
	require.NoError(t, pickedUp.MarkPickedUp())

	orders := new(MockOrderReader)
	orders.On("GetAll", ctx).
		Return([]*order.Order{placed, another, pickedUp}, nil).Once()

	handler := queries.NewGetRestaurantOverviewQueryHandler(orders)
	response, err := handler.Handle(ctx, queries.NewGetRestaurantOverviewQuery())

	require.NoError(t, err)
	assert.Equal(t, 3, response.TotalOrders)
	assert.Equal(t, 2, response.ActiveOrders)
	assert.Equal(t, 2, response.ByStatus[order.StatusPlaced.String()])
	assert.Equal(t, 1, response.ByStatus[order.StatusPickedUp.String()])
}
