// Package menu provides the in-memory menu collaborator consulted during
// order placement.
package menu

import (
	"context"
	"strings"
	"sync"
)

// Menu is a thread-safe set of menu item references. Placement validation
// reads it; item management goes through Put and Delete.
type Menu struct {
	mu    sync.RWMutex
	items map[string]bool
}

// NewMenu creates a menu preloaded with the given item references. Blank
// references are ignored.
func NewMenu(items []string) *Menu {
	m := &Menu{items: make(map[string]bool, len(items))}
	for _, item := range items {
		if ref := strings.TrimSpace(item); ref != "" {
			m.items[ref] = true
		}
	}
	return m
}

// IsValidItem reports whether the reference is currently on the menu.
func (m *Menu) IsValidItem(_ context.Context, menuItemRef string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[menuItemRef]
}

// Put adds an item reference to the menu.
func (m *Menu) Put(menuItemRef string) {
	ref := strings.TrimSpace(menuItemRef)
	if ref == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[ref] = true
}

// Delete takes an item reference off the menu. Orders already placed keep
// their lines; only new placements are affected.
func (m *Menu) Delete(menuItemRef string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, menuItemRef)
}

// Items returns the current references in no particular order.
func (m *Menu) Items() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]string, 0, len(m.items))
	for ref := range m.items {
		items = append(items, ref)
	}
	return items
}
