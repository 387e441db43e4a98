// internal/domain/order/repository_port.go
package order

import "context"

// Repository persists orders in the hosted datastore.
//
// Storage (Firestore), dual-write by design:
// - all_orders/{orderId}            (admin dashboard reads this)
// - orders/{userId}/items/{orderId} (the user's own history)
//
// Create and UpdateStatus must touch both copies in one batch so the two
// views never diverge.
type Repository interface {
	// Create writes both copies of the order.
	Create(ctx context.Context, o *Order) error

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]Order, error)

	// ListAll returns every order, newest first (admin view).
	ListAll(ctx context.Context) ([]Order, error)

	// UpdateStatus sets the status on both copies.
	// userID may be empty for legacy orders that predate the per-user copy;
	// in that case only all_orders is updated.
	UpdateStatus(ctx context.Context, orderID, userID string, status Status) error
}
