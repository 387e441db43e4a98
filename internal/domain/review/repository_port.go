// internal/domain/review/repository_port.go
package review

import "context"

// Repository persists reviews.
//
// Storage (Firestore):
// - reviews/{productId}/items/{userId}
//
// docId = userId is what makes "one review per (user, product)" a storage
// constraint instead of a client-side check: Create runs in a transaction and
// fails with ErrAlreadyReviewed when the document already exists, regardless
// of how many sessions race.
type Repository interface {
	// ListByProduct returns all reviews of a product, newest first.
	ListByProduct(ctx context.Context, productID string) ([]Review, error)

	// GetByUser returns (nil, nil) when the user has not reviewed the product.
	GetByUser(ctx context.Context, productID, userID string) (*Review, error)

	// Create stores the review, failing with ErrAlreadyReviewed if a review
	// by the same user already exists for the product.
	Create(ctx context.Context, r *Review) error
}
