package staff

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrStaffIsNotConstructed is returned when a StaffMember instance was
	// not created through NewStaffMember or RestoreStaffMember.
	ErrStaffIsNotConstructed = errors.New("StaffMember must be created via NewStaffMember or RestoreStaffMember")

	// ErrStaffBusy rejects duty toggles, removals and new assignments while
	// the member is bound to an active order.
	ErrStaffBusy = errors.New("staff member is bound to an active order")

	// ErrStaffOffDuty rejects assignment of members who are not on duty.
	ErrStaffOffDuty = errors.New("staff member is off duty")

	// ErrDuplicateStaff rejects registration under an id that already
	// exists in the role's pool.
	ErrDuplicateStaff = errors.New("staff member with this id already exists")

	// ErrStaffRemoved marks lookups of members that existed but were
	// removed, as opposed to ids that never existed.
	ErrStaffRemoved = errors.New("staff member was removed")

	// ErrNameIsRequired rejects registration without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// StaffMember is the aggregate for chefs and delivery agents. The shape is
// identical for both roles; only the role tag differs.
//
// Invariant: currentOrder is set if and only if exactly one non-terminal
// order references this member. The binding blocks going off duty and
// removal until the order finishes.
type StaffMember struct {
	id   kernel.UUID
	name string
	role Role
	duty DutyStatus

	// currentOrder is a pure lookup field marking the member busy; it never
	// owns the order.
	currentOrder *kernel.UUID

	// history holds completed order ids, append-only.
	history []kernel.UUID

	guard guard.ConstructorGuard
}

// NewStaffMember registers a member. New members start off duty with no
// assignment and an empty history.
func NewStaffMember(id kernel.UUID, name string, role Role) (*StaffMember, error) {
	m := &StaffMember{
		duty:  OffDuty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setRole(role),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreStaffMember reconstructs a member from persisted state, including
// duty status, the active binding and the completed-order history.
func RestoreStaffMember(
	id kernel.UUID,
	name string,
	role Role,
	duty DutyStatus,
	currentOrder *kernel.UUID,
	history []kernel.UUID,
) (*StaffMember, error) {
	m := &StaffMember{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setRole(role),
		duty.Validate(),
	); err != nil {
		return nil, err
	}

	m.duty = duty
	if currentOrder != nil {
		bound := *currentOrder
		m.currentOrder = &bound
	}
	m.history = make([]kernel.UUID, len(history))
	copy(m.history, history)

	return m, nil
}

// Validate ensures the member was built through a constructor.
func (m *StaffMember) Validate() error {
	if m == nil {
		return ErrStaffIsNotConstructed
	}
	return m.guard.Validate(ErrStaffIsNotConstructed)
}

// IsEqual compares members by identity.
func (m *StaffMember) IsEqual(other *StaffMember) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *StaffMember) ID() kernel.UUID {
	return m.id
}

// Name returns the member's display name.
func (m *StaffMember) Name() string {
	return m.name
}

// Role returns the member's role tag.
func (m *StaffMember) Role() Role {
	return m.role
}

// Duty returns the current duty status.
func (m *StaffMember) Duty() DutyStatus {
	return m.duty
}

// CurrentOrder returns the active binding, or nil when the member is free.
func (m *StaffMember) CurrentOrder() *kernel.UUID {
	return m.currentOrder
}

// History returns a copy of the completed order ids in completion order.
func (m *StaffMember) History() []kernel.UUID {
	history := make([]kernel.UUID, len(m.history))
	copy(history, m.history)
	return history
}

// IsBusy reports whether the member is bound to an active order.
func (m *StaffMember) IsBusy() bool {
	return m.currentOrder != nil
}

// IsAvailable reports whether the member can take a new order.
func (m *StaffMember) IsAvailable() bool {
	return m.duty == OnDuty && !m.IsBusy()
}

// GoOnDuty makes the member available for assignment. Always succeeds; an
// already on-duty member stays on duty.
func (m *StaffMember) GoOnDuty() {
	m.duty = OnDuty
}

// GoOffDuty withdraws the member from the pool. Rejected while the member
// is working an order.
func (m *StaffMember) GoOffDuty() error {
	if m.IsBusy() {
		return fmt.Errorf("%w: finish order %s first", ErrStaffBusy, m.currentOrder)
	}
	m.duty = OffDuty
	return nil
}

// TakeOrder binds the member to an order. Requires the member to be on duty
// and free; the caller is responsible for updating the order side of the
// binding in the same transaction.
func (m *StaffMember) TakeOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if m.duty != OnDuty {
		return ErrStaffOffDuty
	}
	if m.IsBusy() {
		return fmt.Errorf("%w: already working order %s", ErrStaffBusy, m.currentOrder)
	}

	m.currentOrder = &orderID
	return nil
}

// CompleteOrder releases the binding and appends the order to the history.
// The order must be the one the member is currently working.
func (m *StaffMember) CompleteOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if m.currentOrder == nil || !m.currentOrder.IsEqual(orderID) {
		return errs.NewObjectNotFoundErrorWithCause("currentOrder", orderID.String(),
			errors.New("order is not bound to this staff member"))
	}

	m.currentOrder = nil
	m.history = append(m.history, orderID)
	return nil
}

func (m *StaffMember) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *StaffMember) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *StaffMember) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	m.role = role
	return nil
}
