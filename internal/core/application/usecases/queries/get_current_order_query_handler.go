package queries

import (
	"context"
	"errors"

	"restaurant/internal/pkg/errs"
)

// GetCurrentOrderQueryHandler answers a staff member's "what am I working
// on". The staff lookup runs first so an unknown or removed member reports
// as such instead of looking idle.
type GetCurrentOrderQueryHandler struct {
	orders OrderReader
	staff  StaffReader
}

// NewGetCurrentOrderQueryHandler creates a handler for active-order queries.
func NewGetCurrentOrderQueryHandler(orders OrderReader, staffReader StaffReader) GetCurrentOrderQueryHandler {
	return GetCurrentOrderQueryHandler{orders: orders, staff: staffReader}
}

// Handle executes the query. A nil response with a nil error means the
// member exists but is not working an order.
func (h GetCurrentOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentOrderQuery,
) (*GetCurrentOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.staff.Get(ctx, query.StaffID()); err != nil {
		return nil, err
	}

	current, err := h.orders.GetCurrentByStaff(ctx, query.StaffID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil //absence of an active order is a valid answer
	}
	if err != nil {
		return nil, err
	}

	return &GetCurrentOrderQueryResponse{
		ID:           current.ID(),
		Kind:         current.Kind(),
		Status:       current.Status(),
		PrepTime:     current.PrepTime(),
		DeliveryTime: current.DeliveryTime(),
	}, nil
}
