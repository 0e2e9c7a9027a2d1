package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/guard"
)

var ErrToggleDutyCommandIsNotConstructed = errors.New(
	"ToggleDutyCommand must be created via NewToggleDutyCommand constructor",
)

// ToggleDutyCommand represents a staff member changing their duty status to
// the given target state.
type ToggleDutyCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID
	duty    staff.DutyStatus

	guard guard.ConstructorGuard
}

// NewToggleDutyCommand creates a command to set a member's duty status.
func NewToggleDutyCommand(staffID kernel.UUID, duty staff.DutyStatus) (ToggleDutyCommand, error) {
	dutyCommand := ToggleDutyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dutyCommand.setStaffID(staffID),
		dutyCommand.setDuty(duty),
	); err != nil {
		return ToggleDutyCommand{}, err
	}

	return dutyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleDutyCommand) Validate() error {
	return c.guard.Validate(ErrToggleDutyCommandIsNotConstructed)
}

// StaffID returns the member's identifier.
func (c ToggleDutyCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Duty returns the target duty status.
func (c ToggleDutyCommand) Duty() staff.DutyStatus {
	return c.duty
}

func (c *ToggleDutyCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *ToggleDutyCommand) setDuty(duty staff.DutyStatus) error {
	if err := duty.Validate(); err != nil {
		return err
	}

	c.duty = duty
	return nil
}
