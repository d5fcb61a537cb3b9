package commands

import (
	"errors"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/pkg/guard"
)

var (
	ErrMarkDeliveredCommandIsNotConstructed = errors.New(
		"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
	)
)

// MarkDeliveredCommand represents an operator recording that a confirmed
// order reached the customer.
type MarkDeliveredCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark a confirmed order as
// delivered. Validates that the order identifier is properly constructed.
func NewMarkDeliveredCommand(orderID kernel.OrderID) (MarkDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark as delivered.
func (c MarkDeliveredCommand) OrderID() kernel.OrderID {
	return c.orderID
}
