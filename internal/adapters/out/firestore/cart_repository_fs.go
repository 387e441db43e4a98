// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	cartdom "dreamweave/internal/domain/cart"
)

// CartRepositoryFS implements cart.RemoteRepository using Firestore.
//
// Collection design:
// - collection: carts
// - docId: userId (docId is the source of truth)
// - fields: items[], updatedAt
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("carts")
}

// Get returns (nil, nil) if no cart doc exists (nil policy; the application
// layer treats nil as an empty cart).
func (r *CartRepositoryFS) Get(ctx context.Context, userID string) ([]cartdom.Line, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("cart_repository_fs: userID is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, wrapIOErr("cart_repository_fs.Get", err)
	}

	// Parse snap.Data() by hand: old docs may carry extra fields or slightly
	// different item shapes, and DataTo on a strict struct turns that into a
	// hard failure.
	return linesFromDoc(snap.Data()), nil
}

// Save overwrites the whole cart doc (simple & predictable).
func (r *CartRepositoryFS) Save(ctx context.Context, userID string, lines []cartdom.Line) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("cart_repository_fs: userID is empty")
	}

	doc := cartDoc{
		Items:     lineDocsFromDomain(lines),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.col().Doc(uid).Set(ctx, doc)
	return wrapIOErr("cart_repository_fs.Save", err)
}

// Delete removes the cart doc. Deleting an absent doc succeeds.
func (r *CartRepositoryFS) Delete(ctx context.Context, userID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("cart_repository_fs: userID is empty")
	}

	_, err := r.col().Doc(uid).Delete(ctx)
	return wrapIOErr("cart_repository_fs.Delete", err)
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartDoc struct {
	Items     []cartLineDoc `firestore:"items"`
	UpdatedAt time.Time     `firestore:"updatedAt"`
}

type cartLineDoc struct {
	ProductID string  `firestore:"productId"`
	Name      string  `firestore:"name"`
	UnitPrice float64 `firestore:"unitPrice"`
	ImageRef  string  `firestore:"imageRef"`
	Size      string  `firestore:"size"`
	Color     string  `firestore:"color"`
	Quantity  int     `firestore:"quantity"`
}

func lineDocsFromDomain(lines []cartdom.Line) []cartLineDoc {
	out := make([]cartLineDoc, 0, len(lines))
	for _, l := range cartdom.NormalizeLines(lines) {
		out = append(out, cartLineDoc{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			ImageRef:  l.ImageRef,
			Size:      l.Size,
			Color:     l.Color,
			Quantity:  l.Quantity,
		})
	}
	return out
}

func linesFromDoc(raw map[string]any) []cartdom.Line {
	if raw == nil {
		return nil
	}
	itemsAny, ok := raw["items"].([]any)
	if !ok || len(itemsAny) == 0 {
		return nil
	}

	out := make([]cartdom.Line, 0, len(itemsAny))
	for _, v := range itemsAny {
		mv, ok := v.(map[string]any)
		if !ok {
			continue
		}
		l := cartdom.Line{
			ProductID: strings.TrimSpace(asString(mv["productId"])),
			Name:      asString(mv["name"]),
			UnitPrice: asFloat(mv["unitPrice"]),
			ImageRef:  asString(mv["imageRef"]),
			Size:      strings.TrimSpace(asString(mv["size"])),
			Color:     asString(mv["color"]),
			Quantity:  asInt(mv["quantity"]),
		}
		if l.ProductID == "" || l.Quantity < 1 {
			continue
		}
		out = append(out, l)
	}
	return cartdom.NormalizeLines(out)
}
