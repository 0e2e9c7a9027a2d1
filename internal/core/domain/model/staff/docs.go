// Package staff contains the StaffMember aggregate shared by chefs and
// delivery agents. A member is assignable only while on duty and free; the
// currentOrder back-reference marks the member busy for exactly one
// non-terminal order at a time and must never be used to reach or free the
// order itself, since orders outlive the binding for history purposes.
package staff
