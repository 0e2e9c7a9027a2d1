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

func TestGetCurrentOrderQueryHandler_Handle(t *testing.T) {
	newChef := func(t *testing.T) *staff.StaffMember {
		t.Helper()
		chef, err := staff.NewStaffMember(kernel.NewUUID(), "Sam", staff.RoleChef)
		require.NoError(t, err)
		return chef
	}

	t.Run("member with an active order", func(t *testing.T) {
		ctx := context.Background()

		chef := newChef(t)
		target := newTestOrder(t, kernel.NewUUID(), order.Takeaway)

		query, err := queries.NewGetCurrentOrderQuery(chef.ID())
		require.NoError(t, err)

		orders := new(MockOrderReader)
		staffReader := new(MockStaffReader)
		staffReader.On("Get", ctx, chef.ID()).Return(chef, nil).Once()
		orders.On("GetCurrentByStaff", ctx, chef.ID()).Return(target, nil).Once()

		handler := queries.NewGetCurrentOrderQueryHandler(orders, staffReader)
		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.NotNil(t, response)
		assert.True(t, response.ID.IsEqual(target.ID()))
	})

	t.Run("idle member answers with no order", func(t *testing.T) {
		ctx := context.Background()

		chef := newChef(t)

		query, err := queries.NewGetCurrentOrderQuery(chef.ID())
		require.NoError(t, err)

		orders := new(MockOrderReader)
		staffReader := new(MockStaffReader)
		staffReader.On("Get", ctx, chef.ID()).Return(chef, nil).Once()
		orders.On("GetCurrentByStaff", ctx, chef.ID()).
			Return(nil, errs.NewObjectNotFoundError("staffID", chef.ID().String())).Once()

		handler := queries.NewGetCurrentOrderQueryHandler(orders, staffReader)
		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Nil(t, response)
	})

	t.Run("removed member is reported as removed", func(t *testing.T) {
		ctx := context.Background()

		staffID := kernel.NewUUID()
		query, err := queries.NewGetCurrentOrderQuery(staffID)
		require.NoError(t, err)

		orders := new(MockOrderReader)
		staffReader := new(MockStaffReader)
		staffReader.On("Get", ctx, staffID).Return(nil, staff.ErrStaffRemoved).Once()

		handler := queries.NewGetCurrentOrderQueryHandler(orders, staffReader)
		_, err = handler.Handle(ctx, query)

		assert.ErrorIs(t, err, staff.ErrStaffRemoved)
	})
}
