package memstore

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// OrderRepository is the transaction-bound order repository. Reads see the
// staged writes of the owning transaction layered over committed state;
// writes stay staged until the unit of work commits.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add stages a new order. The id must not exist yet, staged or committed.
func (r *OrderRepository) Add(_ context.Context, o *order.Order) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	key := o.ID().String()
	if _, ok := r.lookup(key); ok {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			errors.New("order with this id already exists"))
	}

	r.uow.pendingOrders[key] = orderFromDomain(o)
	r.uow.pendingOrderSeq = append(r.uow.pendingOrderSeq, key)
	return nil
}

// Update stages changes to an existing order.
func (r *OrderRepository) Update(_ context.Context, o *order.Order) error {
	if err := r.ensureActive(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	key := o.ID().String()
	if _, ok := r.lookup(key); !ok {
		return errs.NewObjectNotFoundError("orderID", key)
	}

	r.uow.pendingOrders[key] = orderFromDomain(o)
	return nil
}

// Get reads one order through the staging overlay.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := r.ensureActive(); err != nil {
		return nil, err
	}

	key := id.String()
	dto, ok := r.lookup(key)
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", key)
	}
	return orderToDomain(dto)
}

// GetByCustomer reads a customer's orders in placement order.
func (r *OrderRepository) GetByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := r.ensureActive(); err != nil {
		return nil, err
	}

	key := customerID.String()
	result := make([]*order.Order, 0)
	for _, id := range r.sequence() {
		dto, _ := r.lookup(id)
		if dto.CustomerID != key {
			continue
		}
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

// GetCurrentByStaff reads the order the member is working right now,
// resolved through the member's currentOrder back-reference.
func (r *OrderRepository) GetCurrentByStaff(_ context.Context, staffID kernel.UUID) (*order.Order, error) {
	if err := r.ensureActive(); err != nil {
		return nil, err
	}

	key := staffID.String()
	member, ok := r.uow.lookupStaff(key)
	if !ok || member.CurrentOrder == nil {
		return nil, errs.NewObjectNotFoundError("staffID", key)
	}

	dto, ok := r.lookup(*member.CurrentOrder)
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", *member.CurrentOrder)
	}
	return orderToDomain(dto)
}

// GetAll reads every order in placement order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	if err := r.ensureActive(); err != nil {
		return nil, err
	}

	result := make([]*order.Order, 0)
	for _, id := range r.sequence() {
		dto, _ := r.lookup(id)
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *OrderRepository) ensureActive() error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	return nil
}

func (r *OrderRepository) lookup(key string) (ports.OrderSnapshot, bool) {
	if dto, ok := r.uow.pendingOrders[key]; ok {
		return dto, true
	}
	dto, ok := r.uow.store.orders[key]
	return dto, ok
}

func (r *OrderRepository) sequence() []string {
	seq := make([]string, 0, len(r.uow.store.orderSeq)+len(r.uow.pendingOrderSeq))
	seq = append(seq, r.uow.store.orderSeq...)
	seq = append(seq, r.uow.pendingOrderSeq...)
	return seq
}
