// internal/domain/favorite/repository_port.go
package favorite

import "context"

// Repository persists a user's favorite products.
//
// Storage (Firestore):
// - users/{userId}/favorites/{pushKey} -> { productId }
//
// The value is the bare productId (push-key list), so adding is an append
// with a fresh key and removing is a lookup-by-value delete.
type Repository interface {
	// List returns the favorited product ids (push order).
	List(ctx context.Context, userID string) ([]string, error)

	// Add appends productID under a fresh push key.
	Add(ctx context.Context, userID, productID string) error

	// RemoveByProduct deletes every entry holding productID.
	// Removing an absent product is a no-op.
	RemoveByProduct(ctx context.Context, userID, productID string) error
}
