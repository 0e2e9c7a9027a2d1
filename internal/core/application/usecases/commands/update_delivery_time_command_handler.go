package commands

import (
	"context"
)

// UpdateDeliveryTimeCommandHandler revises the delivery estimate of an
// active home-delivery order. Estimates are informational; changing one
// never affects the order's state machine.
type UpdateDeliveryTimeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDeliveryTimeCommandHandler creates a handler for delivery
// estimate revisions.
func NewUpdateDeliveryTimeCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryTimeCommandHandler {
	return UpdateDeliveryTimeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the estimate revision command.
func (h UpdateDeliveryTimeCommandHandler) Handle(ctx context.Context, command UpdateDeliveryTimeCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	target, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = target.UpdateDeliveryTime(command.AgentID(), command.DeliveryTime()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
