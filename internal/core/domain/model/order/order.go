package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order is created with an empty item list.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order represents a customer purchase in the system. It is the aggregate root
// that manages the order lifecycle from submission through delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid, unique, system-generated identifier
//   - Must have a complete customer block and at least one line item
//   - Total amount must be a non-negative decimal
//   - Status and payment-status transitions follow the lifecycle state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the public, human-readable identifier for the order
	id kernel.OrderID

	// customer is the immutable delivery contact block
	customer Customer

	// items is the non-empty ordered sequence of line items
	items []Item

	// totalAmount is the client-supplied order total. It is not recomputed
	// from items; see ItemsTotal for the derived sum.
	totalAmount decimal.Decimal

	// paymentScreenshot is the optional base64-encoded payment proof image
	paymentScreenshot string

	// paymentStatus tracks payment verification alongside the lifecycle
	paymentStatus PaymentStatus

	// status represents the current state in the order lifecycle
	status Status

	// orderDate is the customer-facing order timestamp
	orderDate time.Time

	// createdAt and updatedAt are system-managed timestamps
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a freshly submitted Order with validation. This is the only
// way to create a new order, ensuring all business invariants hold.
//
// The order starts in Pending status. Payment status is PendingVerification
// when a payment screenshot was supplied and Pending otherwise. A zero
// orderDate defaults to the current time.
//
// Example:
//
//	id := kernel.NewOrderID()
//	customer, _ := order.NewCustomer("Asha Rao", "asha@example.com", "9876543210", "", "12 MG Road", "560001")
//	item, _ := order.NewItem("Vanilla Tub", "Classic", 2, decimal.NewFromInt(150))
//	o, err := order.NewOrder(id, customer, []order.Item{item}, decimal.NewFromInt(300), "", time.Time{})
func NewOrder(
	id kernel.OrderID,
	customer Customer,
	items []Item,
	totalAmount decimal.Decimal,
	paymentScreenshot string,
	orderDate time.Time,
) (*Order, error) {
	now := time.Now()

	o := &Order{
		customer:          customer,
		paymentScreenshot: paymentScreenshot,
		status:            StatusPending,
		paymentStatus:     PaymentPending,
		orderDate:         orderDate,
		createdAt:         now,
		updatedAt:         now,
		isConstructed:     true,
	}

	if paymentScreenshot != "" {
		o.paymentStatus = PaymentPendingVerification
	}
	if o.orderDate.IsZero() {
		o.orderDate = now
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// submission defaults. Statuses are validated to catch corrupted records.
func RestoreOrder(
	id kernel.OrderID,
	customer Customer,
	items []Item,
	totalAmount decimal.Decimal,
	paymentScreenshot string,
	paymentStatus PaymentStatus,
	status Status,
	orderDate time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		customer:          customer,
		paymentScreenshot: paymentScreenshot,
		paymentStatus:     paymentStatus,
		status:            status,
		orderDate:         orderDate,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the immutable customer block.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the client-supplied order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// ItemsTotal returns the sum of quantity multiplied by unit price across all
// line items. This derived total may differ from TotalAmount, which is taken
// from the client as-is.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// PaymentScreenshot returns the base64-encoded payment proof image.
// Empty string when none was supplied.
func (o *Order) PaymentScreenshot() string {
	return o.paymentScreenshot
}

// HasPaymentScreenshot reports whether a payment proof image was supplied.
func (o *Order) HasPaymentScreenshot() bool {
	return o.paymentScreenshot != ""
}

// PaymentStatus returns the current payment verification state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns the customer-facing order timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// CreatedAt returns the record creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Accept confirms a pending order.
//
// Business rules:
//   - The order must be in Pending status
//   - Payment status becomes Verified
//
// Returns a state conflict error if the order is not pending; the order is
// left unchanged in that case.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentVerified
	o.updatedAt = time.Now()
	return nil
}

// Reject cancels a pending order.
//
// Business rules:
//   - The order must be in Pending status
//   - Payment status becomes Failed
//
// Returns a state conflict error if the order is not pending; the order is
// left unchanged in that case.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentFailed
	o.updatedAt = time.Now()
	return nil
}

// MarkDelivered completes a confirmed order.
//
// Business rules:
//   - The order must be in Confirmed status
//   - Payment status is left unchanged
//
// Returns a state conflict error if the order is not confirmed.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now()
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setItems validates and sets the order's line items.
// An order must contain at least one item.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setTotalAmount validates and sets the client-supplied total.
// The total must not be negative.
func (o *Order) setTotalAmount(totalAmount decimal.Decimal) error {
	if totalAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%s is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}
