package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrForbidden is returned when the acting chef or agent is not the one
	// recorded on the order.
	ErrForbidden = errors.New("caller is not allowed to act on this order")

	// ErrItemsAreRequired rejects placement with an empty item list.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrAgentAlreadyAssigned guards the assign-exactly-once rule for
	// home-delivery orders.
	ErrAgentAlreadyAssigned = errors.New("order already has an assigned agent")

	// ErrTakeawayNeedsNoAgent rejects agent assignment on takeaway orders.
	ErrTakeawayNeedsNoAgent = errors.New("takeaway orders do not take a delivery agent")
)

// Order is the aggregate root of the order lifecycle. All state changes go
// through its methods, each of which enforces the role, ownership and
// state-machine rules before mutating anything, so a failed call leaves the
// order untouched.
//
// Two orders with identical customer and items are distinct entities with
// distinct ids and independent lifecycles; placement never deduplicates.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	items      []Item
	kind       Kind
	status     Status

	// assignedChef is set when a chef claims the kitchen phase, cleared
	// never: it doubles as the record of who cooked the order.
	assignedChef *kernel.UUID

	// assignedAgent is set exactly once at placement for home delivery and
	// cleared by the Delivered transition.
	assignedAgent *kernel.UUID

	prepTime     kernel.Minutes
	deliveryTime kernel.Minutes
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a freshly placed order. Validation failures are joined so
// the caller sees every problem at once.
func NewOrder(id, customerID kernel.UUID, items []Item, kind Kind, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:    StatusPlaced,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setKind(kind),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persisted state, e.g. a snapshot.
// Unlike NewOrder it accepts any valid status and existing staff bindings.
func RestoreOrder(
	id, customerID kernel.UUID,
	items []Item,
	kind Kind,
	status Status,
	assignedChef, assignedAgent *kernel.UUID,
	prepTime, deliveryTime kernel.Minutes,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:    createdAt,
		prepTime:     prepTime,
		deliveryTime: deliveryTime,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setKind(kind),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	if assignedChef != nil {
		chef := *assignedChef
		o.assignedChef = &chef
	}
	if assignedAgent != nil {
		agent := *assignedAgent
		o.assignedAgent = &agent
	}

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the ordered lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Kind returns the order kind.
func (o *Order) Kind() Kind {
	return o.kind
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// AssignedChef returns the chef bound to the kitchen phase, or nil.
func (o *Order) AssignedChef() *kernel.UUID {
	return o.assignedChef
}

// AssignedAgent returns the delivery agent bound to the order, or nil.
func (o *Order) AssignedAgent() *kernel.UUID {
	return o.assignedAgent
}

// PrepTime returns the kitchen estimate.
func (o *Order) PrepTime() kernel.Minutes {
	return o.prepTime
}

// DeliveryTime returns the delivery estimate.
func (o *Order) DeliveryTime() kernel.Minutes {
	return o.deliveryTime
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignAgent binds a delivery agent to a freshly placed home-delivery
// order. The binding happens exactly once; reassignment is not a thing in
// this system because assignment and placement commit together.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.kind != HomeDelivery {
		return ErrTakeawayNeedsNoAgent
	}
	if o.assignedAgent != nil {
		return ErrAgentAlreadyAssigned
	}
	if o.status != StatusPlaced {
		return fmt.Errorf("%w: cannot assign an agent from %s", ErrInvalidState, o.status)
	}

	o.assignedAgent = &agentID
	return nil
}

// StartPreparation moves the order into the kitchen and records the prep
// estimate. The first call claims the order for the chef; subsequent calls
// must come from the same chef and may revise the estimate.
func (o *Order) StartPreparation(chefID kernel.UUID, prep kernel.Minutes) error {
	if err := chefID.Validate(); err != nil {
		return err
	}
	if o.assignedChef != nil && !o.assignedChef.IsEqual(chefID) {
		return fmt.Errorf("%w: order is being prepared by another chef", ErrForbidden)
	}

	newStatus, err := o.status.StartPreparation()
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.assignedChef == nil {
		o.assignedChef = &chefID
	}
	o.prepTime = prep
	return nil
}

// MarkReady completes the kitchen phase. Only the chef who claimed the
// order may call it; the successor state depends on the order kind.
func (o *Order) MarkReady(chefID kernel.UUID) error {
	if err := chefID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.MarkReady(o.kind)
	if err != nil {
		return err
	}
	if o.assignedChef == nil || !o.assignedChef.IsEqual(chefID) {
		return fmt.Errorf("%w: order is being prepared by another chef", ErrForbidden)
	}

	o.status = newStatus
	return nil
}

// StartDelivery records that the assigned agent left with the order.
func (o *Order) StartDelivery(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrAlreadyFinished, o.status)
	}
	if o.assignedAgent == nil || !o.assignedAgent.IsEqual(agentID) {
		return fmt.Errorf("%w: order is assigned to another agent", ErrForbidden)
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered closes the home-delivery branch and releases the agent
// binding. Checks run terminal-first so a double completion reports
// ErrAlreadyFinished rather than an ownership error (the binding is already
// gone by then).
func (o *Order) MarkDelivered(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrAlreadyFinished, o.status)
	}
	if o.assignedAgent == nil || !o.assignedAgent.IsEqual(agentID) {
		return fmt.Errorf("%w: order is assigned to another agent", ErrForbidden)
	}

	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedAgent = nil
	return nil
}

// UpdateDeliveryTime revises the delivery estimate. Allowed for the
// assigned agent in any non-terminal home-delivery state.
func (o *Order) UpdateDeliveryTime(agentID kernel.UUID, estimate kernel.Minutes) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.kind != HomeDelivery {
		return fmt.Errorf("%w: takeaway orders have no delivery time", ErrInvalidState)
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrAlreadyFinished, o.status)
	}
	if o.assignedAgent == nil || !o.assignedAgent.IsEqual(agentID) {
		return fmt.Errorf("%w: order is assigned to another agent", ErrForbidden)
	}

	o.deliveryTime = estimate
	return nil
}

// MarkPickedUp closes the takeaway branch. The hand-off confirmation
// carries no caller identity.
func (o *Order) MarkPickedUp() error {
	newStatus, err := o.status.CompletePickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.kind = kind
	return nil
}
