package ports

import (
	"context"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
)

// Notifier is the fire-and-forget handoff for transition notifications.
// Each lifecycle transition produces exactly one outbound message; command
// handlers call the matching method after the state change is committed.
//
// Implementations must never block the caller beyond enqueueing and must
// never report delivery failures back: a failed notification is logged and
// retried by the implementation, and the committed state transition stands
// regardless of the outcome.
type Notifier interface {
	// OrderReceived announces a newly submitted order to the shop operator,
	// attaching the payment screenshot when one was supplied.
	OrderReceived(ctx context.Context, aggregate *order.Order)

	// OrderConfirmed tells the customer their order was accepted.
	OrderConfirmed(ctx context.Context, aggregate *order.Order)

	// OrderCancelled tells the customer their order was rejected and the
	// payment will be refunded.
	OrderCancelled(ctx context.Context, aggregate *order.Order)

	// OrderDelivered tells the customer their order was delivered,
	// attaching the rendered invoice when rendering succeeds.
	OrderDelivered(ctx context.Context, aggregate *order.Order)
}
