package order

import (
	"errors"

	"foodadmin/internal/pkg/errs"
	"foodadmin/internal/pkg/guard"
)

var (
	// ErrAddressIsNotConstructed is returned when an Address was not created
	// through the NewAddress factory function.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
)

// Address is the delivery-address snapshot captured when the order is placed.
// It is immutable: later edits to the customer's profile never change an
// existing order.
type Address struct {
	name    string
	phone   string
	street  string
	city    string
	state   string
	zipCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a delivery address snapshot.
// Name, phone, and street are required; city, state, and zip are optional
// free-text fields filled in by the ordering flow.
func NewAddress(name, phone, street, city, state, zipCode string) (Address, error) {
	if name == "" {
		return Address{}, errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return Address{}, errs.NewValueIsRequiredError("phone")
	}
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}

	return Address{
		name:    name,
		phone:   phone,
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Name returns the recipient's name.
func (a Address) Name() string { return a.name }

// Phone returns the recipient's contact phone.
func (a Address) Phone() string { return a.phone }

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city, if provided.
func (a Address) City() string { return a.city }

// State returns the state or region, if provided.
func (a Address) State() string { return a.state }

// ZipCode returns the postal code, if provided.
func (a Address) ZipCode() string { return a.zipCode }
