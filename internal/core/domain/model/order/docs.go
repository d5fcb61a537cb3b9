// Package order provides domain entities and business logic for order management
// in the ordering system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentStatus: The payment verification state coupled to the lifecycle
//   - Customer and Item: immutable value objects captured at submission
//
// Key business rules:
//   - Orders must have a valid unique identifier, a complete customer block,
//     and at least one line item
//   - Order status follows a defined workflow: pending -> confirmed -> delivered,
//     with cancellation possible from pending and confirmed
//   - Delivered and cancelled are terminal states
//   - Accepting an order verifies its payment; rejecting it fails the payment
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
