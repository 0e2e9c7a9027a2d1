package commands

import (
	"context"

	"restaurant/internal/core/domain/model/staff"
)

// AddStaffCommandHandler registers new staff members. New members start off
// duty; a duty toggle is a separate action. Registering under an id that was
// removed earlier revives the id with a fresh, empty profile.
type AddStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewAddStaffCommandHandler creates a handler for staff registration.
func NewAddStaffCommandHandler(uowFactory StaffUoWFactory) AddStaffCommandHandler {
	return AddStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Fails with staff.ErrDuplicateStaff when the id is already registered.
func (h AddStaffCommandHandler) Handle(ctx context.Context, command AddStaffCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	member, err := staff.NewStaffMember(command.StaffID(), command.Name(), command.Role())
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

	if err = uow.StaffRepository().Add(ctx, member); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
