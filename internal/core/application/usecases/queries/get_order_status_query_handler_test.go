package queries_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderStatusQueryHandler_Handle(t *testing.T) {
	t.Run("owner sees status and estimates", func(t *testing.T) {
		ctx := context.Background()

		customerID := kernel.NewUUID()
		target := newTestOrder(t, customerID, order.HomeDelivery)

		query, err := queries.NewGetOrderStatusQuery(customerID, target.ID())
		require.NoError(t, err)

		orders := new(MockOrderReader)
		orders.On("Get", ctx, target.ID()).Return(target, nil).Once()

		handler := queries.NewGetOrderStatusQueryHandler(orders)
		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.True(t, response.ID.IsEqual(target.ID()))
		assert.Equal(t, order.StatusPlaced, response.Status)
		assert.Equal(t, order.HomeDelivery, response.Kind)
		orders.AssertExpectations(t)
	})

	t.Run("foreign order is forbidden", func(t *testing.T) {
		ctx := context.Background()

		target := newTestOrder(t, kernel.NewUUID(), order.Takeaway)

		query, err := queries.NewGetOrderStatusQuery(kernel.NewUUID(), target.ID())
		require.NoError(t, err)

		orders := new(MockOrderReader)
		orders.On("Get", ctx, target.ID()).Return(target, nil).Once()

		handler := queries.NewGetOrderStatusQueryHandler(orders)
		_, err = handler.Handle(ctx, query)

		assert.ErrorIs(t, err, order.ErrForbidden)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		ctx := context.Background()

		orderID := kernel.NewUUID()
		query, err := queries.NewGetOrderStatusQuery(kernel.NewUUID(), orderID)
		require.NoError(t, err)

		orders := new(MockOrderReader)
		orders.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()

		handler := queries.NewGetOrderStatusQueryHandler(orders)
		_, err = handler.Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
