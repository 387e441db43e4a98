// internal/domain/user/repository_port.go
package user

import "context"

// Repository persists user profiles.
//
// Storage (Firestore):
// - users/{uid}
type Repository interface {
	// GetByID returns (nil, ErrNotFound) when no profile exists for uid.
	GetByID(ctx context.Context, uid string) (*Profile, error)

	// Create stores a new profile (docId = profile.ID).
	Create(ctx context.Context, p *Profile) error

	// UpdateName updates the display name on the stored record.
	UpdateName(ctx context.Context, uid, name string) error

	// List returns all profiles (admin customers view).
	List(ctx context.Context) ([]Profile, error)
}
