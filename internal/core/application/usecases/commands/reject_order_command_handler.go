package commands

import (
	"context"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
	"github.com/Tilak2001/Anandicecream/internal/core/ports"
)

// RejectOrderCommandHandler handles the business logic for order rejection.
// Moves a pending order to "cancelled", marks its payment as failed, and
// tells the customer about the cancellation and refund after commit.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for the post-commit customer message.
func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order rejection command.
// Loads the order, applies the pending-to-cancelled transition in the domain
// model, and persists it with a conditional update keyed on the status the
// transition started from. A concurrent transition surfaces as a conflict
// error. The customer notification is dispatched only after a successful
// commit.
func (h RejectOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RejectOrderCommand,
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
	if err = aggregate.Reject(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate, priorStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderCancelled(ctx, aggregate)

	return aggregate, nil
}
