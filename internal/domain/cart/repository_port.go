// internal/domain/cart/repository_port.go
package cart

import "context"

// RemoteRepository is the persistence port for the authenticated user's cart
// in the hosted datastore.
//
// Storage (Firestore):
// - collection: carts
// - docId: userId (docId is the source of truth)
// - fields: items[], updatedAt
//
// Not-found policy: Get returns (nil, nil) and the application layer treats
// nil as "empty cart".
type RemoteRepository interface {
	// Get returns the stored lines for the user, or (nil, nil) when absent.
	Get(ctx context.Context, userID string) ([]Line, error)

	// Save overwrites the user's cart with lines (create or update).
	Save(ctx context.Context, userID string, lines []Line) error

	// Delete removes the user's cart document.
	Delete(ctx context.Context, userID string) error
}

// GuestStore is the persistence port for the anonymous (guest) cart.
// The browser original keeps a single local-storage key holding a JSON array;
// the Go analog is one JSON file on local disk.
type GuestStore interface {
	// Load returns the stored guest lines, or (nil, nil) when nothing was saved.
	Load(ctx context.Context) ([]Line, error)

	// Save overwrites the guest cart.
	Save(ctx context.Context, lines []Line) error

	// Clear removes the guest cart. Clearing an absent cart is a no-op.
	Clear(ctx context.Context) error
}
