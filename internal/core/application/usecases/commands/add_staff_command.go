package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/guard"
)

var ErrAddStaffCommandIsNotConstructed = errors.New(
	"AddStaffCommand must be created via NewAddStaffCommand constructor",
)

// AddStaffCommand represents a manager registering a new chef or delivery
// agent.
type AddStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID
	name    string
	role    staff.Role

	guard guard.ConstructorGuard
}

// NewAddStaffCommand creates a command to register a staff member.
// Validates that the id is valid, the name is not empty and the role is a
// known role.
func NewAddStaffCommand(staffID kernel.UUID, name string, role staff.Role) (AddStaffCommand, error) {
	addCommand := AddStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setStaffID(staffID),
		addCommand.setName(name),
		addCommand.setRole(role),
	); err != nil {
		return AddStaffCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStaffCommand) Validate() error {
	return c.guard.Validate(ErrAddStaffCommandIsNotConstructed)
}

// StaffID returns the new member's identifier.
func (c AddStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Name returns the new member's display name.
func (c AddStaffCommand) Name() string {
	return c.name
}

// Role returns the new member's role.
func (c AddStaffCommand) Role() staff.Role {
	return c.role
}

func (c *AddStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *AddStaffCommand) setName(name string) error {
	if name == "" {
		return staff.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddStaffCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
