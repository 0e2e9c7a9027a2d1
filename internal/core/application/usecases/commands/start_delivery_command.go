package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents the assigned agent picking the order up
// from the kitchen and leaving for the customer.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start the delivery leg.
func NewStartDeliveryCommand(agentID, orderID kernel.UUID) (StartDeliveryCommand, error) {
	deliveryCommand := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setAgentID(agentID),
		deliveryCommand.setOrderID(orderID),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// AgentID returns the acting agent's identifier.
func (c StartDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}

// OrderID returns the target order's identifier.
func (c StartDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartDeliveryCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *StartDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
