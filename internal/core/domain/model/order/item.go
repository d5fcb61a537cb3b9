package order

import (
	"errors"
	"fmt"

	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a single line of an order: a product in a particular flavor,
// a positive quantity, and a non-negative unit price.
//
// Item is a value object: construct it via NewItem and treat it as immutable.
type Item struct {
	product  string
	flavor   string
	quantity int
	price    decimal.Decimal
}

// NewItem creates a validated line item.
//
// Rules:
//   - product name is required
//   - flavor is required
//   - quantity must be a positive integer
//   - unit price must not be negative
func NewItem(product, flavor string, quantity int, price decimal.Decimal) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setProduct(product),
		item.setFlavor(flavor),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Product returns the product name of the line item.
func (i Item) Product() string {
	return i.product
}

// Flavor returns the flavor or variant of the line item.
func (i Item) Flavor() string {
	return i.flavor
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns quantity multiplied by unit price.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	i.product = product
	return nil
}

func (i *Item) setFlavor(flavor string) error {
	if flavor == "" {
		return errs.NewValueIsRequiredError("flavor")
	}
	i.flavor = flavor
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}
