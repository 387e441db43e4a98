// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidProduct = errors.New("product: invalid")
	ErrNotFound       = errors.New("product: not found")
)

// PlaceholderImage is used when a product is created without any image.
const PlaceholderImage = "https://images.unsplash.com/photo-1522771753035-71103b9429b9?w=800"

// Product is a catalog record.
// Rating / Reviews are denormalized aggregates maintained by the review flow.
type Product struct {
	ID            string    `json:"id" firestore:"id"`
	Name          string    `json:"name" firestore:"name"`
	Description   string    `json:"description" firestore:"description"`
	Price         float64   `json:"price" firestore:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty" firestore:"originalPrice"`
	Image         string    `json:"image" firestore:"image"`
	Images        []string  `json:"images,omitempty" firestore:"images"`
	Category      string    `json:"category" firestore:"category"`
	Colors        []string  `json:"colors,omitempty" firestore:"colors"`
	Sizes         []string  `json:"sizes,omitempty" firestore:"sizes"`
	Rating        float64   `json:"rating" firestore:"rating"`
	Reviews       int       `json:"reviews" firestore:"reviews"`
	Badge         string    `json:"badge,omitempty" firestore:"badge"`
	Features      []string  `json:"features,omitempty" firestore:"features"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

// New creates a catalog record.
// Image falls back to the first of images, then to the placeholder.
func New(id, name string, price float64, now time.Time) (*Product, error) {
	pid := strings.TrimSpace(id)
	n := strings.TrimSpace(name)
	if pid == "" || n == "" || price < 0 {
		return nil, ErrInvalidProduct
	}
	return &Product{
		ID:        pid,
		Name:      n,
		Price:     price,
		Image:     PlaceholderImage,
		CreatedAt: now,
	}, nil
}

// Validate checks the invariants a stored record must hold.
func (p *Product) Validate() error {
	if p == nil {
		return ErrInvalidProduct
	}
	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
		return ErrInvalidProduct
	}
	if p.Price < 0 || p.Reviews < 0 {
		return ErrInvalidProduct
	}
	if p.Rating < 0 || p.Rating > 5 {
		return ErrInvalidProduct
	}
	return nil
}
