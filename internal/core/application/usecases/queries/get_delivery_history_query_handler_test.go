package queries_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeliveryHistoryQueryHandler_Handle(t *testing.T) {
	t.Run("history resolves orders in completion order", func(t *testing.T) {
		ctx := context.Background()

		first := newTestOrder(t, kernel.NewUUID(), order.HomeDelivery)
		second := newTestOrder(t, kernel.NewUUID(), order.HomeDelivery)

		agent, err := staff.RestoreStaffMember(
			kernel.NewUUID(), "Dana", staff.RoleDeliveryAgent, staff.OnDuty,
			nil, []kernel.UUID{first.ID(), second.ID()},
		)
		require.NoError(t, err)

		query, err := queries.NewGetDeliveryHistoryQuery(agent.ID())
		require.NoError(t, err)

		orders := new(MockOrderReader)
		staffReader := new(MockStaffReader)
		staffReader.On("Get", ctx, agent.ID()).Return(agent, nil).Once()
		orders.On("Get", ctx, first.ID()).Return(first, nil).Once()
		orders.On("Get", ctx, second.ID()).Return(second, nil).Once()

		handler := queries.NewGetDeliveryHistoryQueryHandler(orders, staffReader)
		history, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.True(t, history[0].ID.IsEqual(first.ID()))
		assert.True(t, history[1].ID.IsEqual(second.ID()))
	})

	t.Run("chef id is rejected", func(t *testing.T) {
		ctx := context.Background()

		kitchenOrder := newTestOrder(t, kernel.NewUUID(), order.Takeaway)
		chef, err := staff.RestoreStaffMember(
			kernel.NewUUID(), "Sam", staff.RoleChef, staff.OnDuty,
			nil, []kernel.UUID{kitchenOrder.ID()},
		)
		require.NoError(t, err)

		query, err := queries.NewGetDeliveryHistoryQuery(chef.ID())
		require.NoError(t, err)

		orders := new(MockOrderReader)
		staffReader := new(MockStaffReader)
		staffReader.On("Get", ctx, chef.ID()).Return(chef, nil).Once()

		handler := queries.NewGetDeliveryHistoryQueryHandler(orders, staffReader)
		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		orders.AssertNotCalled(t, "Get", ctx, kitchenOrder.ID())
	})

	t.Run("agent with no deliveries gets an empty list", func(t *testing.T) {
		ctx := context.Background()

		agent, err := staff.NewStaffMember(kernel.NewUUID(), "Dana", staff.RoleDeliveryAgent)
		require.NoError(t, err)

		query, err := queries.NewGetDeliveryHistoryQuery(agent.ID())
		require.NoError(t, err)

		orders := new(MockOrderReader)
		staffReader := new(MockStaffReader)
		staffReader.On("Get", ctx, agent.ID()).Return(agent, nil).Once()

		handler := queries.NewGetDeliveryHistoryQueryHandler(orders, staffReader)
		history, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, history)
		assert.NotNil(t, history)
	})
}
