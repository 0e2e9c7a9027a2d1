// Package memstore is the authoritative storage adapter: an in-memory order
// store and staff registry guarded by a single store-wide lock. The unit of
// work holds the lock from Begin to Commit or Rollback, which turns every
// command into an atomic validate+mutate step and makes exclusive agent
// assignment hold under concurrent placements.
//
// Aggregates are stored in the transport form defined by ports (plain
// strings and ints), so the store doubles as the source for whole-state
// snapshots without a second mapping layer.
package memstore

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/ports"
)

func orderFromDomain(o *order.Order) ports.OrderSnapshot {
	items := make([]ports.ItemSnapshot, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ports.ItemSnapshot{
			MenuItemRef: item.MenuItemRef(),
			Quantity:    item.Quantity(),
		})
	}

	var chef, agent *string
	if id := o.AssignedChef(); id != nil {
		s := id.String()
		chef = &s
	}
	if id := o.AssignedAgent(); id != nil {
		s := id.String()
		agent = &s
	}

	return ports.OrderSnapshot{
		ID:              o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		Items:           items,
		Kind:            o.Kind().String(),
		Status:          o.Status().String(),
		AssignedChef:    chef,
		AssignedAgent:   agent,
		PrepMinutes:     o.PrepTime().Value(),
		DeliveryMinutes: o.DeliveryTime().Value(),
		CreatedAt:       o.CreatedAt(),
	}
}

func orderToDomain(dto ports.OrderSnapshot) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.MenuItemRef, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	kind, err := order.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	chef, err := optionalUUID(dto.AssignedChef)
	if err != nil {
		return nil, err
	}

	agent, err := optionalUUID(dto.AssignedAgent)
	if err != nil {
		return nil, err
	}

	prep, err := kernel.NewMinutes(dto.PrepMinutes)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewMinutes(dto.DeliveryMinutes)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, items, kind, status, chef, agent, prep, delivery, dto.CreatedAt)
}

func staffFromDomain(m *staff.StaffMember) ports.StaffSnapshot {
	var current *string
	if id := m.CurrentOrder(); id != nil {
		s := id.String()
		current = &s
	}

	history := make([]string, 0, len(m.History()))
	for _, id := range m.History() {
		history = append(history, id.String())
	}

	return ports.StaffSnapshot{
		ID:           m.ID().String(),
		Name:         m.Name(),
		Role:         m.Role().String(),
		Duty:         m.Duty().String(),
		CurrentOrder: current,
		History:      history,
	}
}

func staffToDomain(dto ports.StaffSnapshot) (*staff.StaffMember, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := staff.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	duty, err := staff.DutyStatusFromString(dto.Duty)
	if err != nil {
		return nil, err
	}

	current, err := optionalUUID(dto.CurrentOrder)
	if err != nil {
		return nil, err
	}

	history := make([]kernel.UUID, 0, len(dto.History))
	for _, raw := range dto.History {
		orderID, historyErr := kernel.UUIDFromString(raw)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, orderID)
	}

	return staff.RestoreStaffMember(id, dto.Name, role, duty, current, history)
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //optional field
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
