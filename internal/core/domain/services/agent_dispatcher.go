package services

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
)

// ErrNoAgentAvailable is returned when no on-duty, free delivery agent
// exists at the moment of dispatch. The caller must treat this as a
// rejection of the whole placement: the order is rolled back, not parked
// half-assigned.
var ErrNoAgentAvailable = errors.New("no delivery agent available")

// AgentDispatcher binds a delivery agent to a freshly placed home-delivery
// order.
//
// Selection is first-available over the candidate slice; the staff
// repository hands candidates over in ascending-id order, which keeps the
// choice deterministic for a given pool snapshot. Exclusivity under
// contention is the transaction's job: Dispatch must run under the store
// lock so two concurrent placements can never claim the same agent.
type AgentDispatcher struct{}

// NewAgentDispatcher creates an AgentDispatcher.
func NewAgentDispatcher() AgentDispatcher {
	return AgentDispatcher{}
}

// Dispatch selects the first available agent from candidates and executes
// both sides of the binding: the agent's currentOrder and the order's
// assignedAgent. Returns ErrNoAgentAvailable when every candidate is off
// duty or busy.
func (d AgentDispatcher) Dispatch(o *order.Order, candidates []*staff.StaffMember) (*staff.StaffMember, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	agent, err := d.findFreeAgent(candidates)
	if err != nil {
		return nil, err
	}

	if err = agent.TakeOrder(o.ID()); err != nil {
		return nil, err
	}

	if err = o.AssignAgent(agent.ID()); err != nil {
		return nil, err
	}

	return agent, nil
}

func (d AgentDispatcher) findFreeAgent(candidates []*staff.StaffMember) (*staff.StaffMember, error) {
	for _, m := range candidates {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if m.Role() != staff.RoleDeliveryAgent {
			continue
		}
		if m.IsAvailable() {
			return m, nil
		}
	}
	return nil, ErrNoAgentAvailable
}
