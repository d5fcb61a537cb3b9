package commands

import (
	"errors"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
)

// RejectOrderCommand represents an operator's decision to cancel a pending
// order and mark its payment as failed.
type RejectOrderCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to cancel a pending order.
// Validates that the order identifier is properly constructed.
func NewRejectOrderCommand(orderID kernel.OrderID) (RejectOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RejectOrderCommand{}, err
	}

	return RejectOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c RejectOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
