// internal/adapters/out/firestore/review_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	reviewdom "dreamweave/internal/domain/review"
)

// ReviewRepositoryFS implements review.Repository using Firestore.
//
// Collection design:
// - reviews/{productId}/items/{userId}
//
// docId = userId gives "one review per (user, product)" as a storage
// constraint: Create runs in a transaction whose Create op fails when the
// doc already exists, so racing sessions cannot both succeed.
type ReviewRepositoryFS struct {
	Client *firestore.Client
}

func NewReviewRepositoryFS(client *firestore.Client) *ReviewRepositoryFS {
	return &ReviewRepositoryFS{Client: client}
}

func (r *ReviewRepositoryFS) items(productID string) *firestore.CollectionRef {
	return r.Client.Collection("reviews").Doc(productID).Collection("items")
}

func (r *ReviewRepositoryFS) ListByProduct(ctx context.Context, productID string) ([]reviewdom.Review, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("review_repository_fs: firestore client is nil")
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return nil, errors.New("review_repository_fs: productID is empty")
	}

	it := r.items(pid).Documents(ctx)
	defer it.Stop()

	var out []reviewdom.Review
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapIOErr("review_repository_fs.ListByProduct", err)
		}
		rev := reviewFromData(snap.Data())
		rev.UserID = snap.Ref.ID
		rev.ProductID = pid
		out = append(out, rev)
	}

	// newest first
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// GetByUser returns (nil, nil) when the user has not reviewed the product.
func (r *ReviewRepositoryFS) GetByUser(ctx context.Context, productID, userID string) (*reviewdom.Review, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("review_repository_fs: firestore client is nil")
	}
	pid := strings.TrimSpace(productID)
	uid := strings.TrimSpace(userID)
	if pid == "" || uid == "" {
		return nil, errors.New("review_repository_fs: productID or userID is empty")
	}

	snap, err := r.items(pid).Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, wrapIOErr("review_repository_fs.GetByUser", err)
	}
	rev := reviewFromData(snap.Data())
	rev.UserID = uid
	rev.ProductID = pid
	return &rev, nil
}

func (r *ReviewRepositoryFS) Create(ctx context.Context, rev *reviewdom.Review) error {
	if r == nil || r.Client == nil {
		return errors.New("review_repository_fs: firestore client is nil")
	}
	if rev == nil || strings.TrimSpace(rev.ProductID) == "" || strings.TrimSpace(rev.UserID) == "" {
		return errors.New("review_repository_fs: review, productID or userID is empty")
	}

	ref := r.items(rev.ProductID).Doc(rev.UserID)
	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err == nil {
			return reviewdom.ErrAlreadyReviewed
		} else if !isNotFound(err) {
			return err
		}
		return tx.Create(ref, reviewDocFromDomain(rev))
	})
	if errors.Is(err, reviewdom.ErrAlreadyReviewed) {
		return reviewdom.ErrAlreadyReviewed
	}
	return wrapIOErr("review_repository_fs.Create", err)
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type reviewDoc struct {
	UserID    string    `firestore:"userId"`
	UserName  string    `firestore:"userName"`
	ProductID string    `firestore:"productId"`
	Rating    int       `firestore:"rating"`
	Comment   string    `firestore:"comment"`
	Date      time.Time `firestore:"date"`
}

func reviewDocFromDomain(r *reviewdom.Review) reviewDoc {
	return reviewDoc{
		UserID:    r.UserID,
		UserName:  r.UserName,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Date:      r.Date,
	}
}

func reviewFromData(raw map[string]any) reviewdom.Review {
	if raw == nil {
		return reviewdom.Review{}
	}
	rev := reviewdom.Review{
		UserID:    asString(raw["userId"]),
		UserName:  asString(raw["userName"]),
		ProductID: asString(raw["productId"]),
		Rating:    asInt(raw["rating"]),
		Comment:   asString(raw["comment"]),
	}
	if t, ok := asTime(raw["date"]); ok {
		rev.Date = t
	}
	return rev
}
