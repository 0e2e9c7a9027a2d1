package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateKitchenProgressCommandIsNotConstructed = errors.New(
	"UpdateKitchenProgressCommand must be created via NewUpdateKitchenProgressCommand constructor",
)

// UpdateKitchenProgressCommand represents a chef starting or revising work
// on an order. The first call against a placed order claims it for the chef;
// later calls from the same chef revise the preparation estimate.
type UpdateKitchenProgressCommand struct { //nolint:recvcheck //using for validation
	chefID   kernel.UUID
	orderID  kernel.UUID
	prepTime kernel.Minutes

	guard guard.ConstructorGuard
}

// NewUpdateKitchenProgressCommand creates a command to move an order into
// the kitchen. The estimate is given in whole minutes and is validated
// through kernel.NewMinutes, so negative or absurd values are rejected here.
func NewUpdateKitchenProgressCommand(
	chefID, orderID kernel.UUID,
	prepMinutes int,
) (UpdateKitchenProgressCommand, error) {
	progressCommand := UpdateKitchenProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	prepTime, err := kernel.NewMinutes(prepMinutes)
	if err != nil {
		return UpdateKitchenProgressCommand{}, err
	}
	progressCommand.prepTime = prepTime

	if err := errors.Join(
		progressCommand.setChefID(chefID),
		progressCommand.setOrderID(orderID),
	); err != nil {
		return UpdateKitchenProgressCommand{}, err
	}

	return progressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateKitchenProgressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateKitchenProgressCommandIsNotConstructed)
}

// ChefID returns the acting chef's identifier.
func (c UpdateKitchenProgressCommand) ChefID() kernel.UUID {
	return c.chefID
}

// OrderID returns the target order's identifier.
func (c UpdateKitchenProgressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PrepTime returns the preparation estimate.
func (c UpdateKitchenProgressCommand) PrepTime() kernel.Minutes {
	return c.prepTime
}

func (c *UpdateKitchenProgressCommand) setChefID(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}

	c.chefID = chefID
	return nil
}

func (c *UpdateKitchenProgressCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
