// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	productdom "dreamweave/internal/domain/product"
)

// ProductRepositoryFS implements product.Repository using Firestore.
//
// Collection design:
// - collection: products
// - docId: productId
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("products")
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, productID string) (*productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return nil, errors.New("product_repository_fs: productID is empty")
	}

	snap, err := r.col().Doc(pid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, productdom.ErrNotFound
		}
		return nil, wrapIOErr("product_repository_fs.GetByID", err)
	}

	p := productFromData(snap.Data())
	p.ID = pid // docId wins even if the doc lacks an id field
	return &p, nil
}

func (r *ProductRepositoryFS) List(ctx context.Context) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []productdom.Product
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapIOErr("product_repository_fs.List", err)
		}
		p := productFromData(snap.Data())
		p.ID = snap.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepositoryFS) Create(ctx context.Context, p *productdom.Product) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return errors.New("product_repository_fs: product or product.ID is empty")
	}
	_, err := r.col().Doc(p.ID).Create(ctx, productDocFromDomain(p))
	return wrapIOErr("product_repository_fs.Create", err)
}

func (r *ProductRepositoryFS) Update(ctx context.Context, p *productdom.Product) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return errors.New("product_repository_fs: product or product.ID is empty")
	}
	_, err := r.col().Doc(p.ID).Set(ctx, productDocFromDomain(p))
	return wrapIOErr("product_repository_fs.Update", err)
}

func (r *ProductRepositoryFS) Delete(ctx context.Context, productID string) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return errors.New("product_repository_fs: productID is empty")
	}
	_, err := r.col().Doc(pid).Delete(ctx)
	return wrapIOErr("product_repository_fs.Delete", err)
}

// UpdateAggregateRating writes only the denormalized rating fields so a
// concurrent catalog edit cannot be clobbered by a review submission.
func (r *ProductRepositoryFS) UpdateAggregateRating(ctx context.Context, productID string, rating float64, reviews int) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return errors.New("product_repository_fs: productID is empty")
	}

	_, err := r.col().Doc(pid).Update(ctx, []firestore.Update{
		{Path: "rating", Value: rating},
		{Path: "reviews", Value: reviews},
	})
	return wrapIOErr("product_repository_fs.UpdateAggregateRating", err)
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type productDoc struct {
	ID            string   `firestore:"id"`
	Name          string   `firestore:"name"`
	Description   string   `firestore:"description"`
	Price         float64  `firestore:"price"`
	OriginalPrice float64  `firestore:"originalPrice"`
	Image         string   `firestore:"image"`
	Images        []string `firestore:"images"`
	Category      string   `firestore:"category"`
	Colors        []string `firestore:"colors"`
	Sizes         []string `firestore:"sizes"`
	Rating        float64  `firestore:"rating"`
	Reviews       int      `firestore:"reviews"`
	Badge         string   `firestore:"badge"`
	Features      []string `firestore:"features"`
	CreatedAt     any      `firestore:"createdAt"`
}

func productDocFromDomain(p *productdom.Product) productDoc {
	return productDoc{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Images:        p.Images,
		Category:      p.Category,
		Colors:        p.Colors,
		Sizes:         p.Sizes,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Badge:         p.Badge,
		Features:      p.Features,
		CreatedAt:     p.CreatedAt,
	}
}

// productFromData parses raw doc data defensively: seeded/legacy records may
// store createdAt as an ISO string or omit optional fields entirely.
func productFromData(raw map[string]any) productdom.Product {
	if raw == nil {
		return productdom.Product{}
	}
	p := productdom.Product{
		ID:            asString(raw["id"]),
		Name:          asString(raw["name"]),
		Description:   asString(raw["description"]),
		Price:         asFloat(raw["price"]),
		OriginalPrice: asFloat(raw["originalPrice"]),
		Image:         asString(raw["image"]),
		Images:        asStringSlice(raw["images"]),
		Category:      asString(raw["category"]),
		Colors:        asStringSlice(raw["colors"]),
		Sizes:         asStringSlice(raw["sizes"]),
		Rating:        asFloat(raw["rating"]),
		Reviews:       asInt(raw["reviews"]),
		Badge:         asString(raw["badge"]),
		Features:      asStringSlice(raw["features"]),
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		p.CreatedAt = t
	}
	return p
}
