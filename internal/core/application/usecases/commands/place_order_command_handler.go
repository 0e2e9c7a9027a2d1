package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// ErrUnknownMenuItem rejects placement when an ordered line references an
// item that is not on the menu.
var ErrUnknownMenuItem = errors.New("unknown menu item")

// PlaceOrderCommandHandler handles the business logic for order placement.
// Validates every ordered line against the menu, creates the order in
// "placed" status and, for home delivery, binds a free delivery agent in the
// same transaction. A placement that cannot get an agent is rejected whole:
// no order is retained and no agent stays claimed.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, menu)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoAgentAvailable):
//	    log.Println("All delivery agents are busy")
//	case err != nil:
//	    log.Printf("Placement failed: %v", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	menu       ports.MenuChecker
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and a MenuChecker for
// line validation.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, menu ports.MenuChecker) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		menu:       menu,
	}
}

// Handle processes the placement command.
// Menu validation happens before the transaction starts; the order creation
// and agent binding commit together or not at all.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	for _, item := range command.Items() {
		if !h.menu.IsValidItem(ctx, item.MenuItemRef()) {
			return fmt.Errorf("%w: %q", ErrUnknownMenuItem, item.MenuItemRef())
		}
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.Items(),
		command.Kind(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	staffRepo := uow.StaffRepository()

	if newOrder.Kind() == order.HomeDelivery {
		agents, dispatchErr := staffRepo.GetAllAvailable(ctx, staff.RoleDeliveryAgent)
		if dispatchErr != nil {
			return dispatchErr
		}

		agent, dispatchErr := services.NewAgentDispatcher().Dispatch(newOrder, agents)
		if dispatchErr != nil {
			return dispatchErr
		}

		if dispatchErr = staffRepo.Update(ctx, agent); dispatchErr != nil {
			return dispatchErr
		}
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
