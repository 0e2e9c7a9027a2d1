package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
	"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
)

// GetDeliveryHistoryQuery retrieves the orders a delivery agent has
// completed, in completion order.
type GetDeliveryHistoryQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryHistoryQuery creates a query for an agent's completed
// deliveries.
func NewGetDeliveryHistoryQuery(agentID kernel.UUID) (GetDeliveryHistoryQuery, error) {
	historyQuery := GetDeliveryHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := historyQuery.setAgentID(agentID); err != nil {
		return GetDeliveryHistoryQuery{}, err
	}

	return historyQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

// AgentID returns the agent's identifier.
func (q GetDeliveryHistoryQuery) AgentID() kernel.UUID {
	return q.agentID
}

func (q *GetDeliveryHistoryQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	q.agentID = agentID
	return nil
}

// GetDeliveryHistoryQueryResponse is one completed delivery in an agent's
// history.
type GetDeliveryHistoryQueryResponse struct {
	ID        kernel.UUID
	CreatedAt time.Time
}
