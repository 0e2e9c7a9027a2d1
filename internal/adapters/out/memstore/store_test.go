package memstore_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/memstore"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTakeawayOrder(t *testing.T, store *memstore.Store, customerID kernel.UUID) *order.Order {
	t.Helper()
	ctx := context.Background()

	item, err := order.NewItem("margherita", 1)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID,
		[]order.Item{item}, order.Takeaway, time.Now().UTC(),
	)
	require.NoError(t, err)

	uow := memstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))
	return o
}

func TestStore_Readers(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()

	customerID := kernel.NewUUID()
	first := addTakeawayOrder(t, store, customerID)
	second := addTakeawayOrder(t, store, customerID)
	addTakeawayOrder(t, store, kernel.NewUUID())

	t.Run("get by id", func(t *testing.T) {
		got, err := store.Get(ctx, first.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(first))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := store.Get(ctx, kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("customer history in placement order", func(t *testing.T) {
		history, err := store.GetByCustomer(ctx, customerID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.True(t, history[0].IsEqual(first))
		assert.True(t, history[1].IsEqual(second))
	})

	t.Run("all orders", func(t *testing.T) {
		all, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestStore_StaffTombstones(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()

	member, err := staff.NewStaffMember(kernel.NewUUID(), "Sam", staff.RoleChef)
	require.NoError(t, err)

	uow := memstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.StaffRepository().Add(ctx, member))
	require.NoError(t, uow.Commit(ctx))

	uow = memstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.StaffRepository().Remove(ctx, member.ID()))
	require.NoError(t, uow.Commit(ctx))

	t.Run("removed member reports removed, not missing", func(t *testing.T) {
		_, err := store.GetStaff(ctx, member.ID())
		assert.ErrorIs(t, err, staff.ErrStaffRemoved)
	})

	t.Run("never registered id reports not found", func(t *testing.T) {
		_, err := store.GetStaff(ctx, kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("re-registration clears the tombstone", func(t *testing.T) {
		revived, reviveErr := staff.NewStaffMember(member.ID(), "Sam", staff.RoleChef)
		require.NoError(t, reviveErr)

		uow := memstore.NewUnitOfWork(store)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.StaffRepository().Add(ctx, revived))
		require.NoError(t, uow.Commit(ctx))

		got, getErr := store.GetStaff(ctx, member.ID())
		require.NoError(t, getErr)
		assert.Equal(t, staff.OffDuty, got.Duty())
		assert.Empty(t, got.History())
	})
}

func TestStore_CurrentOrderFollowsStaffBinding(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()

	chef, err := staff.NewStaffMember(kernel.NewUUID(), "Sam", staff.RoleChef)
	require.NoError(t, err)
	chef.GoOnDuty()

	uow := memstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.StaffRepository().Add(ctx, chef))
	require.NoError(t, uow.Commit(ctx))

	first := addTakeawayOrder(t, store, kernel.NewUUID())
	second := addTakeawayOrder(t, store, kernel.NewUUID())

	prep, err := kernel.NewMinutes(15)
	require.NoError(t, err)

	claim := func(o *order.Order) {
		t.Helper()
		uow := memstore.NewUnitOfWork(store)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, o.StartPreparation(chef.ID(), prep))
		require.NoError(t, chef.TakeOrder(o.ID()))
		require.NoError(t, uow.OrderRepository().Update(ctx, o))
		require.NoError(t, uow.StaffRepository().Update(ctx, chef))
		require.NoError(t, uow.Commit(ctx))
	}

	claim(first)

	t.Run("claimed order is the current one", func(t *testing.T) {
		got, getErr := store.GetCurrentByStaff(ctx, chef.ID())
		require.NoError(t, getErr)
		assert.True(t, got.ID().IsEqual(first.ID()))
	})

	uow = memstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, first.MarkReady(chef.ID()))
	require.NoError(t, chef.CompleteOrder(first.ID()))
	require.NoError(t, uow.OrderRepository().Update(ctx, first))
	require.NoError(t, uow.StaffRepository().Update(ctx, chef))
	require.NoError(t, uow.Commit(ctx))

	t.Run("freed chef has no current order", func(t *testing.T) {
		// The chef id stays on the finished-kitchen order, which must not
		// read as a binding.
		_, getErr := store.GetCurrentByStaff(ctx, chef.ID())
		assert.ErrorIs(t, getErr, errs.ErrObjectNotFound)
	})

	claim(second)

	t.Run("second claim wins over the finished kitchen order", func(t *testing.T) {
		got, getErr := store.GetCurrentByStaff(ctx, chef.ID())
		require.NoError(t, getErr)
		assert.True(t, got.ID().IsEqual(second.ID()))
	})
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()

	customerID := kernel.NewUUID()
	placed := addTakeawayOrder(t, store, customerID)

	agent, err := staff.NewStaffMember(kernel.NewUUID(), "Dana", staff.RoleDeliveryAgent)
	require.NoError(t, err)
	agent.GoOnDuty()

	removedID := kernel.NewUUID()
	removed, err := staff.NewStaffMember(removedID, "Alex", staff.RoleChef)
	require.NoError(t, err)

	uow := memstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.StaffRepository().Add(ctx, agent))
	require.NoError(t, uow.StaffRepository().Add(ctx, removed))
	require.NoError(t, uow.StaffRepository().Remove(ctx, removedID))
	require.NoError(t, uow.Commit(ctx))

	snap := store.Snapshot()
	assert.False(t, snap.TakenAt.IsZero())

	restored := memstore.NewStore()
	require.NoError(t, restored.RestoreSnapshot(snap))

	orders, err := restored.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].IsEqual(placed))

	got, err := restored.GetStaff(ctx, agent.ID())
	require.NoError(t, err)
	assert.Equal(t, staff.OnDuty, got.Duty())

	_, err = restored.GetStaff(ctx, removedID)
	assert.ErrorIs(t, err, staff.ErrStaffRemoved)
}
