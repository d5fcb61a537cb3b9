package commands

import (
	"context"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
	"github.com/Tilak2001/Anandicecream/internal/core/ports"
)

// MarkDeliveredCommandHandler handles the business logic for delivery
// completion. Moves a confirmed order to "delivered", leaves the payment
// state untouched, and sends the customer a delivery notice with the
// invoice after commit.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for the post-commit customer message.
func NewMarkDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery completion command.
// Loads the order, applies the confirmed-to-delivered transition in the
// domain model, and persists it with a conditional update keyed on the
// status the transition started from. A concurrent transition surfaces as
// a conflict error. The customer notification is dispatched only after a
// successful commit.
func (h MarkDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkDeliveredCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	priorStatus := aggregate.Status()
	if err = aggregate.MarkDelivered(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate, priorStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderDelivered(ctx, aggregate)

	return aggregate, nil
}
