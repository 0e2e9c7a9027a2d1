package commands

import (
	"context"
)

// MarkDeliveredCommandHandler closes the home-delivery branch of the order
// lifecycle. The order becomes terminal and the agent is released in the
// same transaction, with the order appended to the agent's history. A
// released agent is immediately eligible for the next placement.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for completing deliveries.
func NewMarkDeliveredCommandHandler(uowFactory UoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-delivered command.
// Only the assigned agent may complete the order; a second completion of the
// same order reports it as already finished.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, command MarkDeliveredCommand) error {
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

	if err = target.MarkDelivered(command.AgentID()); err != nil {
		return err
	}

	agent, err := staffRepo.Get(ctx, command.AgentID())
	if err != nil {
		return err
	}

	if err = agent.CompleteOrder(target.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = staffRepo.Update(ctx, agent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
