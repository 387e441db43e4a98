// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	userdom "dreamweave/internal/domain/user"
)

// UserRepositoryFS implements user.Repository using Firestore.
//
// Collection design:
// - collection: users
// - docId: Firebase UID
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

func (r *UserRepositoryFS) GetByID(ctx context.Context, uid string) (*userdom.Profile, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}
	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, errors.New("user_repository_fs: uid is empty")
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, userdom.ErrNotFound
		}
		return nil, wrapIOErr("user_repository_fs.GetByID", err)
	}
	p := profileFromData(snap.Data())
	p.ID = id
	return &p, nil
}

func (r *UserRepositoryFS) Create(ctx context.Context, p *userdom.Profile) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return errors.New("user_repository_fs: profile or profile.ID is empty")
	}

	_, err := r.col().Doc(p.ID).Create(ctx, profileDoc{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
	})
	return wrapIOErr("user_repository_fs.Create", err)
}

func (r *UserRepositoryFS) UpdateName(ctx context.Context, uid, name string) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	id := strings.TrimSpace(uid)
	n := strings.TrimSpace(name)
	if id == "" || n == "" {
		return errors.New("user_repository_fs: uid or name is empty")
	}

	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "name", Value: n},
	})
	if isNotFound(err) {
		return userdom.ErrNotFound
	}
	return wrapIOErr("user_repository_fs.UpdateName", err)
}

func (r *UserRepositoryFS) List(ctx context.Context) ([]userdom.Profile, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []userdom.Profile
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapIOErr("user_repository_fs.List", err)
		}
		p := profileFromData(snap.Data())
		p.ID = snap.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type profileDoc struct {
	ID        string    `firestore:"id"`
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func profileFromData(raw map[string]any) userdom.Profile {
	if raw == nil {
		return userdom.Profile{}
	}
	p := userdom.Profile{
		ID:    asString(raw["id"]),
		Name:  asString(raw["name"]),
		Email: asString(raw["email"]),
		Role:  userdom.Role(strings.TrimSpace(asString(raw["role"]))),
	}
	if p.Role == "" {
		p.Role = userdom.RoleUser
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		p.CreatedAt = t
	}
	return p
}
