package commands

import (
	"errors"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
)

// AcceptOrderCommand represents an operator's decision to confirm a pending
// order and mark its payment as verified.
type AcceptOrderCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to confirm a pending order.
// Validates that the order identifier is properly constructed.
func NewAcceptOrderCommand(orderID kernel.OrderID) (AcceptOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c AcceptOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
