package staff

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role tags a staff member as kitchen or fleet personnel. Each role has its
// own id pool; the same id may exist once per role.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleChef prepares orders.
	RoleChef

	// RoleDeliveryAgent delivers home-delivery orders.
	RoleDeliveryAgent
)

// RoleFromString parses a role name as it appears on the wire.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "Chef":
		return RoleChef, nil
	case "DeliveryAgent":
		return RoleDeliveryAgent, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleChef:
		return "Chef"
	case RoleDeliveryAgent:
		return "DeliveryAgent"
	default:
		return "Unknown"
	}
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r != RoleChef && r != RoleDeliveryAgent {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// DutyStatus is the availability flag of a staff member.
type DutyStatus int

const (
	// DutyUnknown catches uninitialized DutyStatus values.
	DutyUnknown DutyStatus = iota

	// OffDuty members are never considered for assignment.
	OffDuty

	// OnDuty members are assignable while not busy.
	OnDuty
)

// DutyStatusFromString parses a duty status name as stored in snapshots.
func DutyStatusFromString(s string) (DutyStatus, error) {
	switch s {
	case "OffDuty":
		return OffDuty, nil
	case "OnDuty":
		return OnDuty, nil
	default:
		return DutyUnknown, errs.NewValueIsInvalidErrorWithCause("dutyStatus", fmt.Errorf("%q is not a known duty status", s))
	}
}

// String implements fmt.Stringer.
func (d DutyStatus) String() string {
	switch d {
	case OffDuty:
		return "OffDuty"
	case OnDuty:
		return "OnDuty"
	default:
		return "Unknown"
	}
}

// Validate rejects DutyUnknown and out-of-range values.
func (d DutyStatus) Validate() error {
	if d != OffDuty && d != OnDuty {
		return errs.NewValueIsInvalidErrorWithCause("dutyStatus", fmt.Errorf("%d is not a valid duty status", d))
	}
	return nil
}
