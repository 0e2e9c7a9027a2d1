package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// Store holds the committed state of the order store and staff registry.
//
// One mutex guards everything. Write transactions hold it from Begin to
// Commit/Rollback; the read methods take it only for the duration of one
// call, so reads see committed state and never a transaction in flight.
type Store struct {
	mu sync.Mutex

	orders   map[string]ports.OrderSnapshot
	orderSeq []string

	staff        map[string]ports.StaffSnapshot
	removedStaff map[string]bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:       make(map[string]ports.OrderSnapshot),
		staff:        make(map[string]ports.StaffSnapshot),
		removedStaff: make(map[string]bool),
	}
}

// Snapshot returns a deep copy of the committed state for persistence.
func (s *Store) Snapshot() ports.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := ports.Snapshot{
		TakenAt: time.Now().UTC(),
		Orders:  make([]ports.OrderSnapshot, 0, len(s.orderSeq)),
		Staff:   make([]ports.StaffSnapshot, 0, len(s.staff)+len(s.removedStaff)),
	}

	for _, id := range s.orderSeq {
		snap.Orders = append(snap.Orders, copyOrderSnapshot(s.orders[id]))
	}

	for _, id := range sortedKeys(s.staff) {
		snap.Staff = append(snap.Staff, copyStaffSnapshot(s.staff[id]))
	}
	for _, id := range sortedBoolKeys(s.removedStaff) {
		snap.Staff = append(snap.Staff, ports.StaffSnapshot{ID: id, Removed: true})
	}

	return snap
}

// RestoreSnapshot replaces the store contents with a previously saved
// snapshot. Meant for startup, before the store is shared.
func (s *Store) RestoreSnapshot(snap ports.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make(map[string]ports.OrderSnapshot, len(snap.Orders))
	orderSeq := make([]string, 0, len(snap.Orders))
	staffByID := make(map[string]ports.StaffSnapshot)
	removed := make(map[string]bool)

	for _, dto := range snap.Orders {
		// Rehydration validates the entry before it is accepted.
		if _, err := orderToDomain(dto); err != nil {
			return err
		}
		orders[dto.ID] = copyOrderSnapshot(dto)
		orderSeq = append(orderSeq, dto.ID)
	}

	for _, dto := range snap.Staff {
		if dto.Removed {
			removed[dto.ID] = true
			continue
		}
		if _, err := staffToDomain(dto); err != nil {
			return err
		}
		staffByID[dto.ID] = copyStaffSnapshot(dto)
	}

	s.orders = orders
	s.orderSeq = orderSeq
	s.staff = staffByID
	s.removedStaff = removed
	return nil
}

// Get reads one committed order. Implements the query side's OrderReader.
func (s *Store) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrderLocked(id.String())
}

// GetByCustomer reads a customer's committed orders in placement order.
func (s *Store) GetByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := customerID.String()
	result := make([]*order.Order, 0)
	for _, id := range s.orderSeq {
		dto := s.orders[id]
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

// GetCurrentByStaff reads the order the member is working right now. The
// member's currentOrder back-reference is the source of truth; a stale
// assignment left on an order (the chef id stays on it after the kitchen
// phase ends) never counts as a binding.
func (s *Store) GetCurrentByStaff(_ context.Context, staffID kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := staffID.String()
	member, ok := s.staff[key]
	if !ok || member.CurrentOrder == nil {
		return nil, errs.NewObjectNotFoundError("staffID", key)
	}
	return s.getOrderLocked(*member.CurrentOrder)
}

// GetAll reads every committed order in placement order.
func (s *Store) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*order.Order, 0, len(s.orderSeq))
	for _, id := range s.orderSeq {
		o, err := orderToDomain(s.orders[id])
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

// GetStaff reads one committed staff member. Implements the query side's
// StaffReader.
func (s *Store) GetStaff(_ context.Context, id kernel.UUID) (*staff.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getStaffLocked(id.String())
}

// getOrderLocked and friends require s.mu to be held by the caller.

func (s *Store) getOrderLocked(key string) (*order.Order, error) {
	dto, ok := s.orders[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", key)
	}
	return orderToDomain(dto)
}

func (s *Store) getStaffLocked(key string) (*staff.StaffMember, error) {
	if s.removedStaff[key] {
		return nil, staff.ErrStaffRemoved
	}
	dto, ok := s.staff[key]
	if !ok {
		return nil, errs.NewObjectNotFoundError("staffID", key)
	}
	return staffToDomain(dto)
}

func copyOrderSnapshot(dto ports.OrderSnapshot) ports.OrderSnapshot {
	out := dto
	out.Items = make([]ports.ItemSnapshot, len(dto.Items))
	copy(out.Items, dto.Items)
	out.AssignedChef = copyOptional(dto.AssignedChef)
	out.AssignedAgent = copyOptional(dto.AssignedAgent)
	return out
}

func copyStaffSnapshot(dto ports.StaffSnapshot) ports.StaffSnapshot {
	out := dto
	out.History = make([]string, len(dto.History))
	copy(out.History, dto.History)
	out.CurrentOrder = copyOptional(dto.CurrentOrder)
	return out
}

func copyOptional(raw *string) *string {
	if raw == nil {
		return nil
	}
	val := *raw
	return &val
}

func sortedKeys(m map[string]ports.StaffSnapshot) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedBoolKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
