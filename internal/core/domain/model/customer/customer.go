package customer

import (
	"errors"
	"fmt"
	"strings"

	"foodadmin/internal/core/domain/model/kernel"
	"foodadmin/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through the NewCustomer factory function.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is the contact record behind an order's userId. Order listings
// join it in so admins see who to call about a cancellation.
type Customer struct {
	// id is the unique identifier for the customer
	id kernel.UUID

	// name is the customer's display name
	name string

	// email is the customer's contact email
	email string

	// phone is the customer's contact phone
	phone string

	// isConstructed ensures the customer was created via NewCustomer
	isConstructed bool
}

// NewCustomer creates a customer contact record.
// Name and email are required; phone is optional but recommended, since the
// cancellation triage screen surfaces it to admins.
func NewCustomer(id kernel.UUID, name, email, phone string) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	return c, nil
}

// Validate ensures the Customer instance was created via NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's contact phone, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid",
			fmt.Errorf("%q does not look like an email address", email))
	}
	c.email = email
	return nil
}
