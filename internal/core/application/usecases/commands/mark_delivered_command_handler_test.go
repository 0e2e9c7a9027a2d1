package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deliveredFixture builds an out-for-delivery order bound to an agent.
func deliveredFixture(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()

	agent := newOnDutyAgent(t, "Dana")
	chef := newOnDutyChef(t, "Sam")

	target := newPlacedOrder(t, order.HomeDelivery)
	require.NoError(t, agent.TakeOrder(target.ID()))
	require.NoError(t, target.AssignAgent(agent.ID()))

	prep, err := kernel.NewMinutes(15)
	require.NoError(t, err)
	require.NoError(t, target.StartPreparation(chef.ID(), prep))
	require.NoError(t, target.MarkReady(chef.ID()))
	require.NoError(t, target.StartDelivery(agent.ID()))

	return target, agent.ID()
}

func TestMarkDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	target, agentID := deliveredFixture(t)
	agent := newOnDutyAgent(t, "Dana")
	// Rebind the repository copy of the agent to the order under test.
	require.NoError(t, agent.TakeOrder(target.ID()))

	cmd, err := commands.NewMarkDeliveredCommand(agentID, target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	uowFactory := new(MockUoWFactory)

	uowFactory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("StaffRepository").Return(staffRepo).Once()
	orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()
	staffRepo.On("Get", ctx, agentID).Return(agent, nil).Once()
	orderRepo.On("Update", ctx, target).Return(nil).Once()
	staffRepo.On("Update", ctx, agent).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewMarkDeliveredCommandHandler(uowFactory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, target.Status())
	assert.Nil(t, target.AssignedAgent())
	assert.False(t, agent.IsBusy())
	require.Len(t, agent.History(), 1)
	assert.True(t, agent.History()[0].IsEqual(target.ID()))

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	staffRepo.AssertExpectations(t)
}

func TestMarkDeliveredCommandHandler_Handle_RejectsWrongAgent(t *testing.T) {
	ctx := context.Background()

	target, _ := deliveredFixture(t)
	intruderID := kernel.NewUUID()

	cmd, err := commands.NewMarkDeliveredCommand(intruderID, target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	uowFactory := new(MockUoWFactory)

	uowFactory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("StaffRepository").Return(staffRepo).Once()
	orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewMarkDeliveredCommandHandler(uowFactory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrForbidden)
	assert.Equal(t, order.StatusOutForDelivery, target.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	staffRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestMarkDeliveredCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := context.Background()

	target, agentID := deliveredFixture(t)
	require.NoError(t, target.MarkDelivered(agentID))

	cmd, err := commands.NewMarkDeliveredCommand(agentID, target.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	uowFactory := new(MockUoWFactory)

	uowFactory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("StaffRepository").Return(staffRepo).Once()
	orderRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewMarkDeliveredCommandHandler(uowFactory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyFinished)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
