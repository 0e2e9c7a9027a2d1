package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant/internal/adapters/out/memstore"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type uowFactory struct{ store *memstore.Store }

func (f uowFactory) Create() commands.UoW { return memstore.NewUnitOfWork(f.store) }

type allowAllMenu struct{}

func (allowAllMenu) IsValidItem(context.Context, string) bool { return true }

func seedAgent(t *testing.T, store *memstore.Store, name string) kernel.UUID {
	t.Helper()
	ctx := context.Background()

	agent, err := staff.NewStaffMember(kernel.NewUUID(), name, staff.RoleDeliveryAgent)
	require.NoError(t, err)
	agent.GoOnDuty()

	uow := memstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.StaffRepository().Add(ctx, agent))
	require.NoError(t, uow.Commit(ctx))

	return agent.ID()
}

func placeCommand(t *testing.T, kind order.Kind) commands.PlaceOrderCommand {
	t.Helper()

	item, err := order.NewItem("margherita", 1)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, kind,
	)
	require.NoError(t, err)
	return cmd
}

// Two concurrent home-delivery placements compete for the last free agent.
// Exactly one must win; the loser must leave no order behind.
func TestUnitOfWork_ConcurrentPlacementsShareOneAgent(t *testing.T) {
	ctx := context.Background()

	store := memstore.NewStore()
	agentID := seedAgent(t, store, "Dana")

	handler := commands.NewPlaceOrderCommandHandler(uowFactory{store: store}, allowAllMenu{})

	first := placeCommand(t, order.HomeDelivery)
	second := placeCommand(t, order.HomeDelivery)

	errs := make([]error, 2)
	var g errgroup.Group
	g.Go(func() error {
		errs[0] = handler.Handle(ctx, first)
		return nil
	})
	g.Go(func() error {
		errs[1] = handler.Handle(ctx, second)
		return nil
	})
	require.NoError(t, g.Wait())

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, services.ErrNoAgentAvailable):
			lost++
		default:
			t.Fatalf("unexpected placement error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	orders, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].AssignedAgent())
	assert.True(t, orders[0].AssignedAgent().IsEqual(agentID))

	agent, err := store.GetStaff(ctx, agentID)
	require.NoError(t, err)
	require.NotNil(t, agent.CurrentOrder())
	assert.True(t, agent.CurrentOrder().IsEqual(orders[0].ID()))
}

// A rejected placement must not leak partial state: no order, no binding.
func TestUnitOfWork_RejectedPlacementLeavesNoTrace(t *testing.T) {
	ctx := context.Background()

	store := memstore.NewStore()
	handler := commands.NewPlaceOrderCommandHandler(uowFactory{store: store}, allowAllMenu{})

	err := handler.Handle(ctx, placeCommand(t, order.HomeDelivery))
	require.ErrorIs(t, err, services.ErrNoAgentAvailable)

	orders, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUnitOfWork_StagedWritesInvisibleUntilCommit(t *testing.T) {
	ctx := context.Background()

	store := memstore.NewStore()

	item, err := order.NewItem("carbonara", 1)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, order.Takeaway, time.Now().UTC(),
	)
	require.NoError(t, err)

	uow := memstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	// The transaction sees its own write.
	staged, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, staged.IsEqual(o))

	require.NoError(t, uow.Rollback(ctx))

	orders, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUnitOfWork_LifecycleErrors(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()

	uow := memstore.NewUnitOfWork(store)
	assert.ErrorIs(t, uow.Commit(ctx), memstore.ErrNoActiveTransaction)
	assert.ErrorIs(t, uow.Rollback(ctx), memstore.ErrNoActiveTransaction)

	require.NoError(t, uow.Begin(ctx))
	assert.ErrorIs(t, uow.Begin(ctx), memstore.ErrTransactionActive)
	require.NoError(t, uow.Commit(ctx))
	assert.ErrorIs(t, uow.Rollback(ctx), memstore.ErrNoActiveTransaction)
}
