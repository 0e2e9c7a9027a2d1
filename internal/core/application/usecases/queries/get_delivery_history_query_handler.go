package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"
)

// GetDeliveryHistoryQueryHandler lists an agent's completed deliveries. An
// agent who has not delivered anything yet gets an empty list.
type GetDeliveryHistoryQueryHandler struct {
	orders OrderReader
	staff  StaffReader
}

// NewGetDeliveryHistoryQueryHandler creates a handler for delivery history
// queries.
func NewGetDeliveryHistoryQueryHandler(orders OrderReader, staffReader StaffReader) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{orders: orders, staff: staffReader}
}

// Handle executes the query. The history on the staff aggregate is the
// source of truth; each entry is resolved against the order store for its
// placement timestamp.
func (h GetDeliveryHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryHistoryQuery,
) ([]GetDeliveryHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agent, err := h.staff.Get(ctx, query.AgentID())
	if err != nil {
		return nil, err
	}
	if agent.Role() != staff.RoleDeliveryAgent {
		return nil, errs.NewValueIsInvalidErrorWithCause("agentID",
			errors.New("staff member is not a delivery agent"))
	}

	completed := agent.History()
	history := make([]GetDeliveryHistoryQueryResponse, 0, len(completed))
	for _, orderID := range completed {
		delivered, resolveErr := h.orders.Get(ctx, orderID)
		if resolveErr != nil {
			return nil, resolveErr
		}
		history = append(history, GetDeliveryHistoryQueryResponse{
			ID:        delivered.ID(),
			CreatedAt: delivered.CreatedAt(),
		})
	}

	return history, nil
}
