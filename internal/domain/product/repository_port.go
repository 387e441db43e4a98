// internal/domain/product/repository_port.go
package product

import "context"

// Repository is the persistence port for catalog records.
//
// Storage (Firestore):
// - collection: products
// - docId: productId
type Repository interface {
	// GetByID returns (nil, ErrNotFound) when the product does not exist.
	GetByID(ctx context.Context, productID string) (*Product, error)

	// List returns the whole catalog (the storefront browses it in full).
	List(ctx context.Context) ([]Product, error)

	// Create stores a new record (docId = product.ID).
	Create(ctx context.Context, p *Product) error

	// Update overwrites the record.
	Update(ctx context.Context, p *Product) error

	// Delete removes the record. Cart lines referencing it are NOT touched;
	// the freshness refresher passes them through unchanged.
	Delete(ctx context.Context, productID string) error

	// UpdateAggregateRating writes the denormalized rating / review count.
	UpdateAggregateRating(ctx context.Context, productID string, rating float64, reviews int) error
}

// Catalog is the read-side lookup used by the cart freshness refresher.
// Implementations may serve from a snapshot-listener cache; a miss falls back
// to (nil, ErrNotFound) just like Repository.GetByID.
type Catalog interface {
	Lookup(ctx context.Context, productID string) (*Product, error)
}
