package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveStaffCommandIsNotConstructed = errors.New(
	"RemoveStaffCommand must be created via NewRemoveStaffCommand constructor",
)

// RemoveStaffCommand represents a manager removing a staff member from the
// registry.
type RemoveStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveStaffCommand creates a command to remove a staff member.
func NewRemoveStaffCommand(staffID kernel.UUID) (RemoveStaffCommand, error) {
	removeCommand := RemoveStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setStaffID(staffID); err != nil {
		return RemoveStaffCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStaffCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStaffCommandIsNotConstructed)
}

// StaffID returns the identifier of the member to remove.
func (c RemoveStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c *RemoveStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}
