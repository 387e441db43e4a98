// internal/application/usecase/user_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	"dreamweave/internal/domain/common"
	userdom "dreamweave/internal/domain/user"
)

// UserUsecase maintains the datastore-side user profiles.
// Credentials live in the hosted identity service; this layer only mirrors
// the profile record written at signup.
type UserUsecase struct {
	repo  userdom.Repository
	clock Clock
}

func NewUserUsecase(repo userdom.Repository) *UserUsecase {
	return &UserUsecase{repo: repo, clock: systemClock{}}
}

// NewUserUsecaseWithClock is useful for tests.
func NewUserUsecaseWithClock(repo userdom.Repository, clock Clock) *UserUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &UserUsecase{repo: repo, clock: clock}
}

// EnsureProfile creates the profile for a freshly signed-up uid.
// Idempotent: an existing profile is returned untouched (signup retries,
// multiple devices).
func (uc *UserUsecase) EnsureProfile(ctx context.Context, uid, name, email string) (*userdom.Profile, error) {
	existing, err := uc.repo.GetByID(ctx, strings.TrimSpace(uid))
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, userdom.ErrNotFound) {
		return nil, err
	}

	p, err := userdom.NewProfile(uid, name, email, uc.clock.Now())
	if err != nil {
		return nil, common.E(common.KindValidation, "user_usecase.EnsureProfile", err)
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the profile for uid.
func (uc *UserUsecase) Get(ctx context.Context, uid string) (*userdom.Profile, error) {
	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, common.Ef(common.KindValidation, "user_usecase.Get", "empty uid")
	}
	return uc.repo.GetByID(ctx, id)
}

// UpdateName changes the stored display name (mirrors the auth profile
// update the client performs against the identity service).
func (uc *UserUsecase) UpdateName(ctx context.Context, uid, name string) error {
	id := strings.TrimSpace(uid)
	n := strings.TrimSpace(name)
	if id == "" || n == "" {
		return common.Ef(common.KindValidation, "user_usecase.UpdateName", "empty uid or name")
	}
	return uc.repo.UpdateName(ctx, id, n)
}

// IsAdmin reports whether uid has the admin role. Missing profile is false,
// not an error (dashboard guard).
func (uc *UserUsecase) IsAdmin(ctx context.Context, uid string) (bool, error) {
	p, err := uc.repo.GetByID(ctx, strings.TrimSpace(uid))
	if err != nil {
		if errors.Is(err, userdom.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.IsAdmin(), nil
}

// ListCustomers returns all profiles (admin customers view).
func (uc *UserUsecase) ListCustomers(ctx context.Context) ([]userdom.Profile, error) {
	return uc.repo.List(ctx)
}
