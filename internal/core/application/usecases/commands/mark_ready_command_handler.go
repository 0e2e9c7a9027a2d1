package commands

import (
	"context"
)

// MarkReadyCommandHandler completes the kitchen phase of an order. The order
// moves to ready-for-pickup or ready-for-delivery depending on its kind, and
// the chef is released back into the pool with the order appended to their
// history.
type MarkReadyCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkReadyCommandHandler creates a handler for marking orders ready.
func NewMarkReadyCommandHandler(uowFactory UoWFactory) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-ready command.
// Only the chef who claimed the order may complete it; the order transition
// and the chef's release commit together.
func (h MarkReadyCommandHandler) Handle(ctx context.Context, command MarkReadyCommand) error {
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
	staffRepo := uow.StaffRepository()

	target, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = target.MarkReady(command.ChefID()); err != nil {
		return err
	}

	chef, err := staffRepo.Get(ctx, command.ChefID())
	if err != nil {
		return err
	}

	if err = chef.CompleteOrder(target.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = staffRepo.Update(ctx, chef); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
