package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Item is one line of an order: a menu item reference and a quantity.
// Whether the reference points at a real menu item is the menu
// collaborator's call, made during placement; the value object only
// guarantees shape.
type Item struct {
	menuItemRef string
	quantity    int
}

// NewItem creates an order line. The reference must be non-empty and the
// quantity positive.
func NewItem(menuItemRef string, quantity int) (Item, error) {
	if menuItemRef == "" {
		return Item{}, errs.NewValueIsRequiredError("menuItemRef")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Item{menuItemRef: menuItemRef, quantity: quantity}, nil
}

// MenuItemRef returns the referenced menu item identifier.
func (i Item) MenuItemRef() string {
	return i.menuItemRef
}

// Quantity returns how many units of the item were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Validate rejects zero-value items.
func (i Item) Validate() error {
	if i.menuItemRef == "" || i.quantity <= 0 {
		return errs.NewValueIsRequiredError("item must be created via NewItem")
	}
	return nil
}
