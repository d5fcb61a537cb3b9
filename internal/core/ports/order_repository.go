package ports

import (
	"context"

	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/kernel"
	"github.com/Tilak2001/Anandicecream/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store is a dumb persistence layer: lifecycle rules live in the domain
// model and command handlers, while the repository enforces identifier
// uniqueness and provides the conditional update used to serialize
// concurrent transitions.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns a conflict error when the order identifier already exists,
	// allowing the caller to regenerate the identifier and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, but only when
	// the stored status still equals expectedStatus. When another caller won
	// the transition race, the stored status differs and Update returns a
	// conflict error without modifying the record. Returns a not-found error
	// for unknown identifiers.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and payment state.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
