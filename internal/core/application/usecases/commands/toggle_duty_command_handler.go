package commands

import (
	"context"

	"restaurant/internal/core/domain/model/staff"
)

// ToggleDutyCommandHandler sets a member's duty status. Going on duty always
// succeeds and is idempotent; going off duty is rejected while the member is
// bound to an active order.
type ToggleDutyCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewToggleDutyCommandHandler creates a handler for duty toggles.
func NewToggleDutyCommandHandler(uowFactory StaffUoWFactory) ToggleDutyCommandHandler {
	return ToggleDutyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duty toggle command.
func (h ToggleDutyCommandHandler) Handle(ctx context.Context, command ToggleDutyCommand) error {
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

	if command.Duty() == staff.OnDuty {
		member.GoOnDuty()
	} else if err = member.GoOffDuty(); err != nil {
		return err
	}

	if err = staffRepo.Update(ctx, member); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
