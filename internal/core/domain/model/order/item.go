package order

import (
	"fmt"

	"foodadmin/internal/pkg/errs"
)

// Item is one line of an order: a menu item name and how many were ordered.
// The item list is fixed once the order is placed.
type Item struct {
	name     string
	quantity int
}

// NewItem creates an order line. The name must be non-empty and the
// quantity positive.
func NewItem(name string, quantity int) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{name: name, quantity: quantity}, nil
}

// Name returns the menu item name.
func (i Item) Name() string { return i.name }

// Quantity returns how many units were ordered.
func (i Item) Quantity() int { return i.quantity }
