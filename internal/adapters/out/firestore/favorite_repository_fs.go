// internal/adapters/out/firestore/favorite_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

// FavoriteRepositoryFS implements favorite.Repository using Firestore.
//
// Layout:
// - users/{userId}/favorites/{pushKey} -> { productId }
//
// Push-key list, not a set: Add appends under a fresh key and
// RemoveByProduct queries by value, mirroring the RTDB-era shape.
type FavoriteRepositoryFS struct {
	Client *firestore.Client
}

func NewFavoriteRepositoryFS(client *firestore.Client) *FavoriteRepositoryFS {
	return &FavoriteRepositoryFS{Client: client}
}

func (r *FavoriteRepositoryFS) col(userID string) *firestore.CollectionRef {
	return r.Client.Collection("users").Doc(userID).Collection("favorites")
}

func (r *FavoriteRepositoryFS) List(ctx context.Context, userID string) ([]string, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("favorite_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("favorite_repository_fs: userID is empty")
	}

	it := r.col(uid).Documents(ctx)
	defer it.Stop()

	var out []string
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapIOErr("favorite_repository_fs.List", err)
		}
		if pid := strings.TrimSpace(asString(snap.Data()["productId"])); pid != "" {
			out = append(out, pid)
		}
	}
	return out, nil
}

func (r *FavoriteRepositoryFS) Add(ctx context.Context, userID, productID string) error {
	if r == nil || r.Client == nil {
		return errors.New("favorite_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return errors.New("favorite_repository_fs: userID or productID is empty")
	}

	_, err := r.col(uid).Doc(uuid.NewString()).Set(ctx, map[string]any{"productId": pid})
	return wrapIOErr("favorite_repository_fs.Add", err)
}

func (r *FavoriteRepositoryFS) RemoveByProduct(ctx context.Context, userID, productID string) error {
	if r == nil || r.Client == nil {
		return errors.New("favorite_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return errors.New("favorite_repository_fs: userID or productID is empty")
	}

	it := r.col(uid).Where("productId", "==", pid).Documents(ctx)
	defer it.Stop()

	batch := r.Client.Batch()
	n := 0
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return wrapIOErr("favorite_repository_fs.RemoveByProduct", err)
		}
		batch.Delete(snap.Ref)
		n++
	}
	if n == 0 {
		return nil
	}
	_, err := batch.Commit(ctx)
	return wrapIOErr("favorite_repository_fs.RemoveByProduct", err)
}
