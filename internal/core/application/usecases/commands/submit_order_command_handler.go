package commands

import (
	"context"
	"errors"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
	"github.com/Tilak2001/Anandicecream/internal/core/ports"
	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"
)

// maxOrderIDAttempts bounds the regenerate-and-retry loop used when a
// generated order identifier collides with an existing row.
const maxOrderIDAttempts = 3

// SubmitOrderCommandHandler handles the business logic for order intake.
// Creates new orders in "pending" status with a freshly generated order
// identifier, persists them transactionally, and announces the new order
// to the shop operator after commit.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewSubmitOrderCommand(customer, items, total, screenshot, time.Time{})
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// created.ID() carries the generated tracking identifier
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewSubmitOrderCommandHandler creates a handler for order intake operations.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for the post-commit operator announcement.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order submission command.
// Generates an order identifier and creates the order in "pending" status.
// On an identifier collision the insert is retried with a fresh identifier
// and a fresh transaction, up to maxOrderIDAttempts times. The operator
// notification is dispatched only after a successful commit; the created
// aggregate is returned so the transport layer can echo the tracking id.
func (h SubmitOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *order.Order
	var err error
	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		created, err = h.insertWithFreshID(ctx, cmd)
		if err == nil {
			break
		}
		if !errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	h.notifier.OrderReceived(ctx, created)

	return created, nil
}

// insertWithFreshID runs a single submission attempt in its own transaction.
// A failed insert aborts the surrounding Postgres transaction, so every
// attempt gets a fresh unit of work.
func (h SubmitOrderCommandHandler) insertWithFreshID(
	ctx context.Context,
	cmd SubmitOrderCommand,
) (*order.Order, error) {
	aggregate, err := order.NewOrder(
		kernel.NewOrderID(),
		cmd.Customer(),
		cmd.Items(),
		cmd.TotalAmount(),
		cmd.PaymentScreenshot(),
		cmd.OrderDate(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
