package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
)

// UpdateKitchenProgressCommandHandler handles the kitchen side of the order
// lifecycle. On the first call the chef claims the order and both the order
// and the chef's binding are updated in one transaction; on later calls the
// same chef revises the estimate without touching the binding.
type UpdateKitchenProgressCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateKitchenProgressCommandHandler creates a handler for kitchen
// progress updates.
func NewUpdateKitchenProgressCommandHandler(uowFactory UoWFactory) UpdateKitchenProgressCommandHandler {
	return UpdateKitchenProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the kitchen progress command.
// Rejects callers that are not chefs, chefs already working another order
// and orders outside the placed or in-kitchen states.
func (h UpdateKitchenProgressCommandHandler) Handle(ctx context.Context, command UpdateKitchenProgressCommand) error {
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

	chef, err := staffRepo.Get(ctx, command.ChefID())
	if err != nil {
		return err
	}
	if chef.Role() != staff.RoleChef {
		return fmt.Errorf("%w: only chefs update kitchen progress", order.ErrForbidden)
	}

	target, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	claiming := target.AssignedChef() == nil

	if err = target.StartPreparation(command.ChefID(), command.PrepTime()); err != nil {
		return err
	}

	if claiming {
		if err = chef.TakeOrder(target.ID()); err != nil {
			return err
		}
		if err = staffRepo.Update(ctx, chef); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
