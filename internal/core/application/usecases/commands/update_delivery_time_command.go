package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateDeliveryTimeCommandIsNotConstructed = errors.New(
	"UpdateDeliveryTimeCommand must be created via NewUpdateDeliveryTimeCommand constructor",
)

// UpdateDeliveryTimeCommand represents the assigned agent revising the
// delivery estimate of a home-delivery order.
type UpdateDeliveryTimeCommand struct { //nolint:recvcheck //using for validation
	agentID      kernel.UUID
	orderID      kernel.UUID
	deliveryTime kernel.Minutes

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryTimeCommand creates a command to revise a delivery
// estimate. The estimate is validated through kernel.NewMinutes.
func NewUpdateDeliveryTimeCommand(
	agentID, orderID kernel.UUID,
	deliveryMinutes int,
) (UpdateDeliveryTimeCommand, error) {
	timeCommand := UpdateDeliveryTimeCommand{
		guard: guard.NewConstructorGuard(),
	}

	deliveryTime, err := kernel.NewMinutes(deliveryMinutes)
	if err != nil {
		return UpdateDeliveryTimeCommand{}, err
	}
	timeCommand.deliveryTime = deliveryTime

	if err := errors.Join(
		timeCommand.setAgentID(agentID),
		timeCommand.setOrderID(orderID),
	); err != nil {
		return UpdateDeliveryTimeCommand{}, err
	}

	return timeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryTimeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryTimeCommandIsNotConstructed)
}

// AgentID returns the acting agent's identifier.
func (c UpdateDeliveryTimeCommand) AgentID() kernel.UUID {
	return c.agentID
}

// OrderID returns the target order's identifier.
func (c UpdateDeliveryTimeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryTime returns the revised delivery estimate.
func (c UpdateDeliveryTimeCommand) DeliveryTime() kernel.Minutes {
	return c.deliveryTime
}

func (c *UpdateDeliveryTimeCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateDeliveryTimeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
