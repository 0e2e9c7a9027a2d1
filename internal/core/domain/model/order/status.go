package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Lifecycle errors shared by Status transitions and the Order aggregate.
var (
	// ErrInvalidState is returned when an action is attempted from a state
	// that does not permit it, e.g. marking an order delivered while it is
	// still in the kitchen.
	ErrInvalidState = errors.New("action is not allowed in the current order state")

	// ErrAlreadyFinished is returned when an action is attempted on an order
	// that reached a terminal state.
	ErrAlreadyFinished = errors.New("order is already finished")
)

// Status is the lifecycle state of an order. It is a value object: each
// transition method validates the move and returns the next state, so an
// invalid transition can never be stored.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial state right after placement.
	StatusPlaced

	// StatusInKitchen means a chef has claimed the order and is preparing it.
	StatusInKitchen

	// StatusReadyForPickup means a takeaway order awaits customer collection.
	StatusReadyForPickup

	// StatusReadyForDelivery means a home-delivery order awaits its agent.
	StatusReadyForDelivery

	// StatusOutForDelivery means the assigned agent is en route.
	StatusOutForDelivery

	// StatusDelivered is the terminal state of the home-delivery branch.
	StatusDelivered

	// StatusPickedUp is the terminal state of the takeaway branch.
	StatusPickedUp
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "Unknown",
		StatusPlaced:           "Placed",
		StatusInKitchen:        "InKitchen",
		StatusReadyForPickup:   "ReadyForPickup",
		StatusReadyForDelivery: "ReadyForDelivery",
		StatusOutForDelivery:   "OutForDelivery",
		StatusDelivered:        "Delivered",
		StatusPickedUp:         "PickedUp",
	}
}

// StatusFromString parses a status name as stored in snapshots.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// String implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusPickedUp
}

// StartPreparation moves the order into the kitchen. Re-applying it while
// already InKitchen is allowed so the chef can revise the prep estimate.
func (s Status) StartPreparation() (Status, error) {
	if s.IsTerminal() {
		return StatusUnknown, fmt.Errorf("%w: status is %s", ErrAlreadyFinished, s)
	}
	if s != StatusPlaced && s != StatusInKitchen {
		return StatusUnknown, fmt.Errorf("%w: cannot start preparation from %s", ErrInvalidState, s)
	}
	return StatusInKitchen, nil
}

// MarkReady completes the kitchen phase. The successor depends on the order
// kind: takeaway orders await pickup, home-delivery orders await their agent.
func (s Status) MarkReady(kind Kind) (Status, error) {
	if s.IsTerminal() {
		return StatusUnknown, fmt.Errorf("%w: status is %s", ErrAlreadyFinished, s)
	}
	if s != StatusInKitchen {
		return StatusUnknown, fmt.Errorf("%w: cannot mark ready from %s", ErrInvalidState, s)
	}
	if kind == Takeaway {
		return StatusReadyForPickup, nil
	}
	return StatusReadyForDelivery, nil
}

// StartDelivery moves a ready home-delivery order out the door.
func (s Status) StartDelivery() (Status, error) {
	if s.IsTerminal() {
		return StatusUnknown, fmt.Errorf("%w: status is %s", ErrAlreadyFinished, s)
	}
	if s != StatusReadyForDelivery {
		return StatusUnknown, fmt.Errorf("%w: cannot start delivery from %s", ErrInvalidState, s)
	}
	return StatusOutForDelivery, nil
}

// CompleteDelivery closes the home-delivery branch. Agents may complete
// straight from ReadyForDelivery when the hand-off happens at the door.
func (s Status) CompleteDelivery() (Status, error) {
	if s.IsTerminal() {
		return StatusUnknown, fmt.Errorf("%w: status is %s", ErrAlreadyFinished, s)
	}
	if s != StatusReadyForDelivery && s != StatusOutForDelivery {
		return StatusUnknown, fmt.Errorf("%w: cannot complete delivery from %s", ErrInvalidState, s)
	}
	return StatusDelivered, nil
}

// CompletePickup closes the takeaway branch.
func (s Status) CompletePickup() (Status, error) {
	if s.IsTerminal() {
		return StatusUnknown, fmt.Errorf("%w: status is %s", ErrAlreadyFinished, s)
	}
	if s != StatusReadyForPickup {
		return StatusUnknown, fmt.Errorf("%w: cannot complete pickup from %s", ErrInvalidState, s)
	}
	return StatusPickedUp, nil
}
