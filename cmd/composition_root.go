package cmd

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/memstore"
	"restaurant/internal/adapters/out/menu"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"
)

const defaultSnapshotInterval = 30 * time.Second

// CompositionRoot wires the adapters into the application handlers. The
// store and menu are shared singletons; every handler gets its own unit of
// work per command through the factory.
type CompositionRoot struct {
	config Config
	store  *memstore.Store
	menu   *menu.Menu
	gormDB *gorm.DB
	logger *slog.Logger

	uowFactory memstore.UnitOfWorkFactory
}

// NewCompositionRoot creates the object graph. gormDB may be nil, which
// disables snapshot persistence.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	store := memstore.NewStore()
	return CompositionRoot{
		config:     config,
		store:      store,
		menu:       menu.NewMenu(strings.Split(config.MenuItems, ",")),
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: memstore.NewUnitOfWorkFactory(store),
	}
}

// Store exposes the shared store, e.g. for snapshot restore at startup.
func (c *CompositionRoot) Store() *memstore.Store {
	return c.store
}

// Menu exposes the shared menu.
func (c *CompositionRoot) Menu() *menu.Menu {
	return c.menu
}

// CreateSnapshotStore returns the persistence adapter, or false when the
// process runs without a database.
func (c *CompositionRoot) CreateSnapshotStore() (postgres.SnapshotStore, bool) {
	if c.gormDB == nil {
		return postgres.SnapshotStore{}, false
	}
	return postgres.NewSnapshotStore(c.gormDB), true
}

// CreateJobManager wires the snapshot job, or returns nil without a
// database.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sink, ok := c.CreateSnapshotStore()
	if !ok {
		return nil
	}
	return jobs.NewJobManager(c.store, sink, c.snapshotInterval(), c.logger)
}

// CreateHTTPServer wires every command and query handler into the REST
// surface.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateKitchenProgressCommandHandler(),
		c.CreateMarkReadyCommandHandler(),
		c.CreateStartDeliveryCommandHandler(),
		c.CreateMarkDeliveredCommandHandler(),
		c.CreateUpdateDeliveryTimeCommandHandler(),
		c.CreateMarkPickedUpCommandHandler(),
		c.CreateAddStaffCommandHandler(),
		c.CreateRemoveStaffCommandHandler(),
		c.CreateToggleDutyCommandHandler(),
		c.CreateGetOrderStatusQueryHandler(),
		c.CreateGetCustomerHistoryQueryHandler(),
		c.CreateGetCurrentOrderQueryHandler(),
		c.CreateGetDeliveryHistoryQueryHandler(),
		c.CreateGetRestaurantOverviewQueryHandler(),
	)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.menu)
}

func (c *CompositionRoot) CreateUpdateKitchenProgressCommandHandler() commands.UpdateKitchenProgressCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateKitchenProgressCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkReadyCommandHandler(f)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryTimeCommandHandler() commands.UpdateDeliveryTimeCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryTimeCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkPickedUpCommandHandler(f)
}

func (c *CompositionRoot) CreateAddStaffCommandHandler() commands.AddStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveStaffCommandHandler() commands.RemoveStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleDutyCommandHandler() commands.ToggleDutyCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleDutyCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetCustomerHistoryQueryHandler() queries.GetCustomerHistoryQueryHandler {
	return queries.NewGetCustomerHistoryQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetCurrentOrderQueryHandler() queries.GetCurrentOrderQueryHandler {
	return queries.NewGetCurrentOrderQueryHandler(c.store, memstore.NewStaffView(c.store))
}

func (c *CompositionRoot) CreateGetDeliveryHistoryQueryHandler() queries.GetDeliveryHistoryQueryHandler {
	return queries.NewGetDeliveryHistoryQueryHandler(c.store, memstore.NewStaffView(c.store))
}

func (c *CompositionRoot) CreateGetRestaurantOverviewQueryHandler() queries.GetRestaurantOverviewQueryHandler {
	return queries.NewGetRestaurantOverviewQueryHandler(c.store)
}

func (c *CompositionRoot) snapshotInterval() time.Duration {
	seconds, err := strconv.Atoi(c.config.SnapshotIntervalSeconds)
	if err != nil || seconds <= 0 {
		return defaultSnapshotInterval
	}
	return time.Duration(seconds) * time.Second
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
