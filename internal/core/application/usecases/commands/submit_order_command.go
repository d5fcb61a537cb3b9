package commands

import (
	"errors"
	"strings"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"
	"github.com/Tilak2001/Anandicecream/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a customer's request to place a new order.
// It carries the validated customer block, the non-empty item list, the
// client-supplied total, an optional payment screenshot, and an optional
// order date.
//
// The payment screenshot is normalized on construction: a data-URL prefix
// ("data:image/png;base64,...") is stripped so downstream consumers always
// see bare base64.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	customer          order.Customer
	items             []order.Item
	totalAmount       decimal.Decimal
	paymentScreenshot string
	orderDate         time.Time

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to place a new order.
// Validates that the item list is non-empty and the total is a non-negative
// decimal; field-level rules for the customer block and items are enforced
// by their own constructors. A zero orderDate means "now".
func NewSubmitOrderCommand(
	customer order.Customer,
	items []order.Item,
	totalAmount decimal.Decimal,
	paymentScreenshot string,
	orderDate time.Time,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		customer:  customer,
		orderDate: orderDate,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItems(items),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	cmd.setPaymentScreenshot(paymentScreenshot)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Customer returns the delivery contact block.
func (c SubmitOrderCommand) Customer() order.Customer {
	return c.customer
}

// Items returns the ordered line items.
func (c SubmitOrderCommand) Items() []order.Item {
	return c.items
}

// TotalAmount returns the client-supplied order total.
func (c SubmitOrderCommand) TotalAmount() decimal.Decimal {
	return c.totalAmount
}

// PaymentScreenshot returns the bare base64 payment proof, or empty string.
func (c SubmitOrderCommand) PaymentScreenshot() string {
	return c.paymentScreenshot
}

// OrderDate returns the requested order date; zero means "now".
func (c SubmitOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c *SubmitOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *SubmitOrderCommand) setTotalAmount(totalAmount decimal.Decimal) error {
	if totalAmount.IsNegative() {
		return errs.NewValueIsInvalidError("totalAmount")
	}
	c.totalAmount = totalAmount
	return nil
}

func (c *SubmitOrderCommand) setPaymentScreenshot(screenshot string) {
	if idx := strings.Index(screenshot, ","); idx >= 0 && strings.HasPrefix(screenshot, "data:") {
		screenshot = screenshot[idx+1:]
	}
	c.paymentScreenshot = screenshot
}
