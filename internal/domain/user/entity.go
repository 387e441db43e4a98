// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidProfile = errors.New("user: invalid profile")
	ErrNotFound       = errors.New("user: not found")
)

// Role gates access to the admin dashboard endpoints.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile is the stored user record (auth itself lives in the hosted
// identity service; this is the datastore-side mirror written at signup).
type Profile struct {
	ID        string    `json:"id" firestore:"id"` // Firebase UID (docId)
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Role      Role      `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// NewProfile builds the record written at signup. Role defaults to user;
// admins are promoted out of band.
func NewProfile(uid, name, email string, now time.Time) (*Profile, error) {
	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, ErrInvalidProfile
	}
	return &Profile{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Role:      RoleUser,
		CreatedAt: now,
	}, nil
}

// IsAdmin reports whether the profile may use dashboard endpoints.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
