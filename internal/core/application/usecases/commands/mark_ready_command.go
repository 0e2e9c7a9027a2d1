package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand represents the claiming chef finishing the kitchen phase
// of an order.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	chefID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command to mark an order as ready.
func NewMarkReadyCommand(chefID, orderID kernel.UUID) (MarkReadyCommand, error) {
	readyCommand := MarkReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		readyCommand.setChefID(chefID),
		readyCommand.setOrderID(orderID),
	); err != nil {
		return MarkReadyCommand{}, err
	}

	return readyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// ChefID returns the acting chef's identifier.
func (c MarkReadyCommand) ChefID() kernel.UUID {
	return c.chefID
}

// OrderID returns the target order's identifier.
func (c MarkReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkReadyCommand) setChefID(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}

	c.chefID = chefID
	return nil
}

func (c *MarkReadyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
