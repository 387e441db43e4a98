// internal/application/usecase/product_usecase.go
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dreamweave/internal/domain/common"
	productdom "dreamweave/internal/domain/product"
)

// ImageStore uploads product images to object storage and returns a public
// URL for the stored object.
type ImageStore interface {
	Upload(ctx context.Context, objectName, contentType string, data []byte) (url string, err error)
}

// ProductImage is an image payload attached to a create/update request.
type ProductImage struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ProductInput is the writable subset of a catalog record.
type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	Image         string // manual URL; superseded by uploaded images
	Category      string
	Colors        []string
	Sizes         []string
	Badge         string
	Features      []string
}

// ProductUsecase is the catalog CRUD surface (admin) plus the public reads.
type ProductUsecase struct {
	repo   productdom.Repository
	images ImageStore // optional; without it only manual URLs work
	clock  Clock
}

func NewProductUsecase(repo productdom.Repository, images ImageStore) *ProductUsecase {
	return &ProductUsecase{repo: repo, images: images, clock: systemClock{}}
}

// NewProductUsecaseWithClock is useful for tests.
func NewProductUsecaseWithClock(repo productdom.Repository, images ImageStore, clock Clock) *ProductUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &ProductUsecase{repo: repo, images: images, clock: clock}
}

// List returns the whole catalog.
func (uc *ProductUsecase) List(ctx context.Context) ([]productdom.Product, error) {
	return uc.repo.List(ctx)
}

// Get returns one product.
func (uc *ProductUsecase) Get(ctx context.Context, productID string) (*productdom.Product, error) {
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return nil, common.Ef(common.KindValidation, "product_usecase.Get", "empty productID")
	}
	return uc.repo.GetByID(ctx, pid)
}

// Create stores a new product. Uploaded images win over a manual URL; with
// neither, the placeholder image is used. The first image doubles as the
// primary `image` field for older clients.
func (uc *ProductUsecase) Create(ctx context.Context, in ProductInput, images []ProductImage) (*productdom.Product, error) {
	p, err := productdom.New(uuid.NewString(), in.Name, in.Price, uc.clock.Now())
	if err != nil {
		return nil, common.E(common.KindValidation, "product_usecase.Create", err)
	}
	uc.apply(p, in)

	urls, err := uc.uploadAll(ctx, p.ID, images)
	if err != nil {
		return nil, err
	}
	switch {
	case len(urls) > 0:
		p.Image = urls[0]
		p.Images = urls
	case strings.TrimSpace(in.Image) != "":
		p.Image = strings.TrimSpace(in.Image)
		p.Images = []string{p.Image}
	default:
		p.Image = productdom.PlaceholderImage
		p.Images = []string{p.Image}
	}

	if err := p.Validate(); err != nil {
		return nil, common.E(common.KindValidation, "product_usecase.Create", err)
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update overwrites the writable fields; new uploads replace the image list.
// Rating / review count are not writable here (the review flow owns them).
func (uc *ProductUsecase) Update(ctx context.Context, productID string, in ProductInput, images []ProductImage) (*productdom.Product, error) {
	p, err := uc.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	uc.apply(p, in)

	urls, err := uc.uploadAll(ctx, p.ID, images)
	if err != nil {
		return nil, err
	}
	if len(urls) > 0 {
		p.Image = urls[0]
		p.Images = urls
	} else if strings.TrimSpace(in.Image) != "" {
		p.Image = strings.TrimSpace(in.Image)
		if len(p.Images) == 0 {
			p.Images = []string{p.Image}
		}
	}

	if err := p.Validate(); err != nil {
		return nil, common.E(common.KindValidation, "product_usecase.Update", err)
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the product from the catalog. Existing cart lines and
// reviews referencing it are left alone.
func (uc *ProductUsecase) Delete(ctx context.Context, productID string) error {
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return common.Ef(common.KindValidation, "product_usecase.Delete", "empty productID")
	}
	return uc.repo.Delete(ctx, pid)
}

func (uc *ProductUsecase) apply(p *productdom.Product, in ProductInput) {
	if n := strings.TrimSpace(in.Name); n != "" {
		p.Name = n
	}
	p.Description = strings.TrimSpace(in.Description)
	if in.Price > 0 {
		p.Price = in.Price
	}
	p.OriginalPrice = in.OriginalPrice
	p.Category = strings.TrimSpace(in.Category)
	p.Colors = in.Colors
	p.Sizes = in.Sizes
	p.Badge = strings.TrimSpace(in.Badge)
	p.Features = in.Features
}

func (uc *ProductUsecase) uploadAll(ctx context.Context, productID string, images []ProductImage) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}
	if uc.images == nil {
		return nil, common.Ef(common.KindValidation, "product_usecase.uploadAll", "image upload not configured")
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		name := fmt.Sprintf("products/%s_%s_%s", productID, uuid.NewString()[:8], sanitizeFileName(img.FileName))
		url, err := uc.images.Upload(ctx, name, img.ContentType, img.Data)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "image"
	}
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
