// Package services holds domain services: operations that span multiple
// aggregates and therefore belong to neither. The AgentDispatcher binds a
// delivery agent to a new order; callers must run it inside the same
// transaction that persists both sides of the binding.
package services
