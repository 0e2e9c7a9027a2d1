package ports

import "context"

// MenuChecker is the boundary to the menu collaborator. The core consults
// it during placement validation and trusts its verdict; menu CRUD itself
// lives outside the core.
type MenuChecker interface {
	// IsValidItem reports whether the referenced menu item currently exists
	// on the menu.
	IsValidItem(ctx context.Context, menuItemRef string) bool
}
