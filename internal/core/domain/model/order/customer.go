package order

import (
	"errors"

	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"
)

// Customer holds the delivery contact details captured at submission.
// All fields are immutable after the order is created; there is no
// edit-order operation.
//
// Customer is a value object: construct it via NewCustomer. The alternate
// phone number is the only optional field.
type Customer struct {
	fullName        string
	email           string
	phone           string
	alternatePhone  string
	deliveryAddress string
	pincode         string
}

// NewCustomer creates a validated customer block.
// Full name, email, phone, delivery address and pincode are required;
// the validation error names the first missing field.
func NewCustomer(fullName, email, phone, alternatePhone, deliveryAddress, pincode string) (Customer, error) {
	customer := Customer{alternatePhone: alternatePhone}

	if err := errors.Join(
		customer.setRequired(&customer.fullName, fullName, "fullName"),
		customer.setRequired(&customer.email, email, "email"),
		customer.setRequired(&customer.phone, phone, "phone"),
		customer.setRequired(&customer.deliveryAddress, deliveryAddress, "deliveryAddress"),
		customer.setRequired(&customer.pincode, pincode, "pincode"),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// FullName returns the customer's full name.
func (c Customer) FullName() string {
	return c.fullName
}

// Email returns the customer's email address.
func (c Customer) Email() string {
	return c.email
}

// Phone returns the customer's primary phone number.
func (c Customer) Phone() string {
	return c.phone
}

// AlternatePhone returns the optional secondary phone number.
// Empty string when not provided.
func (c Customer) AlternatePhone() string {
	return c.alternatePhone
}

// DeliveryAddress returns the delivery address.
func (c Customer) DeliveryAddress() string {
	return c.deliveryAddress
}

// Pincode returns the delivery postal code.
func (c Customer) Pincode() string {
	return c.pincode
}

func (c *Customer) setRequired(dst *string, value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
