package commands

import (
	"context"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
	"github.com/Tilak2001/Anandicecream/internal/core/ports"
)

// AcceptOrderCommandHandler handles the business logic for order confirmation.
// Moves a pending order to "confirmed", marks its payment as verified, and
// tells the customer about the confirmation after commit.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewAcceptOrderCommand(orderID)
//
//	confirmed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order id
//	case errors.Is(err, errs.ErrConflict):
//	    // order already left "pending"
//	case err != nil:
//	    // infrastructure failure
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order confirmation.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for the post-commit customer message.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order confirmation command.
// Loads the order, applies the pending-to-confirmed transition in the domain
// model, and persists it with a conditional update keyed on the status the
// transition started from. A concurrent transition surfaces as a conflict
// error and leaves the stored order untouched. The customer notification is
// dispatched only after a successful commit.
func (h AcceptOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptOrderCommand,
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
	if err = aggregate.Accept(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate, priorStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderConfirmed(ctx, aggregate)

	return aggregate, nil
}
