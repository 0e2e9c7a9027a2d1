package commands

import (
	"context"
)

// MarkPickedUpCommandHandler closes the takeaway branch of the order
// lifecycle. Takeaway orders carry no staff binding at this point, so only
// the order changes.
type MarkPickedUpCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPickedUpCommandHandler creates a handler for takeaway hand-offs.
func NewMarkPickedUpCommandHandler(uowFactory OrderUoWFactory) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the picked-up command.
// The order must be in the ready-for-pickup state; terminal orders report as
// already finished.
func (h MarkPickedUpCommandHandler) Handle(ctx context.Context, command MarkPickedUpCommand) error {
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

	if err = target.MarkPickedUp(); err != nil {
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
