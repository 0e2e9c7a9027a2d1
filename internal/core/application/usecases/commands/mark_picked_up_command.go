package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents the front counter confirming that the
// customer collected a takeaway order.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to close a takeaway order.
func NewMarkPickedUpCommand(orderID kernel.UUID) (MarkPickedUpCommand, error) {
	pickupCommand := MarkPickedUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := pickupCommand.setOrderID(orderID); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return pickupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c MarkPickedUpCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkPickedUpCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
