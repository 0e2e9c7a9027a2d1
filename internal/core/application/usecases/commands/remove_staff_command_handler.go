package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/staff"
)

// RemoveStaffCommandHandler removes staff members from the registry. A
// member working an active order cannot be removed; the order has to finish
// first. Removal leaves a tombstone so later lookups can tell "was removed"
// apart from "never existed".
type RemoveStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewRemoveStaffCommandHandler creates a handler for staff removal.
func NewRemoveStaffCommandHandler(uowFactory StaffUoWFactory) RemoveStaffCommandHandler {
	return RemoveStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h RemoveStaffCommandHandler) Handle(ctx context.Context, command RemoveStaffCommand) error {
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

	staffRepo := uow.StaffRepository()

	member, err := staffRepo.Get(ctx, command.StaffID())
	if err != nil {
		return err
	}

	if member.IsBusy() {
		return fmt.Errorf("%w: cannot remove while order %s is active",
			staff.ErrStaffBusy, member.CurrentOrder())
	}

	if err = staffRepo.Remove(ctx, command.StaffID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
