// Package order contains the Order aggregate and its lifecycle state
// machine.
//
// An order moves monotonically through the states
//
//	Placed → InKitchen → ReadyForPickup (takeaway)
//	                   → ReadyForDelivery → OutForDelivery → Delivered
//
// with PickedUp closing the takeaway branch. Delivered and PickedUp are
// terminal; no transition ever moves backward and nothing can be re-applied
// from a terminal state. Every mutating method checks the caller's identity
// against the chef or agent recorded on the order, so role and ownership
// violations are rejected inside the aggregate rather than at call sites.
package order
