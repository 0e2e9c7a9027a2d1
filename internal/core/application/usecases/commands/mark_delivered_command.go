package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the assigned agent confirming delivery of
// a home-delivery order to the customer.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to complete a delivery.
func NewMarkDeliveredCommand(agentID, orderID kernel.UUID) (MarkDeliveredCommand, error) {
	deliveredCommand := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveredCommand.setAgentID(agentID),
		deliveredCommand.setOrderID(orderID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return deliveredCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// AgentID returns the acting agent's identifier.
func (c MarkDeliveredCommand) AgentID() kernel.UUID {
	return c.agentID
}

// OrderID returns the target order's identifier.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkDeliveredCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
