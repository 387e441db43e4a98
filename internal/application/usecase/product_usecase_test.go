// internal/application/usecase/product_usecase_test.go
package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamweave/internal/domain/common"
	productdom "dreamweave/internal/domain/product"
)

type fakeImageStore struct {
	uploads   []string // object names
	uploadErr error
}

func (f *fakeImageStore) Upload(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, objectName)
	return "https://cdn.example.com/" + objectName, nil
}

func newProductUsecaseForTest(repo *fakeProductRepo, images ImageStore) *ProductUsecase {
	clock := fixedClock{t: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)}
	return NewProductUsecaseWithClock(repo, images, clock)
}

func TestCreateUsesUploadedImagesFirst(t *testing.T) {
	repo := newFakeProductRepo()
	images := &fakeImageStore{}
	uc := newProductUsecaseForTest(repo, images)

	in := ProductInput{Name: "Sheet", Price: 50, Image: "https://manual.example/x.jpg"}
	uploads := []ProductImage{
		{FileName: "front.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		{FileName: "back.jpg", ContentType: "image/jpeg", Data: []byte("b")},
	}

	p, err := uc.Create(context.Background(), in, uploads)
	require.NoError(t, err)

	require.Len(t, p.Images, 2)
	assert.Equal(t, p.Images[0], p.Image) // first upload is the primary
	assert.True(t, strings.HasPrefix(p.Image, "https://cdn.example.com/products/"))
	assert.Len(t, images.uploads, 2)
}

func TestCreateFallsBackToManualURLThenPlaceholder(t *testing.T) {
	ctx := context.Background()
	uc := newProductUsecaseForTest(newFakeProductRepo(), nil)

	p, err := uc.Create(ctx, ProductInput{Name: "A", Price: 1, Image: " https://manual.example/a.jpg "}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://manual.example/a.jpg", p.Image)

	p, err = uc.Create(ctx, ProductInput{Name: "B", Price: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, productdom.PlaceholderImage, p.Image)
}

func TestCreateValidatesInput(t *testing.T) {
	uc := newProductUsecaseForTest(newFakeProductRepo(), nil)

	_, err := uc.Create(context.Background(), ProductInput{Name: "", Price: 1}, nil)
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}

func TestCreateWithoutImageStoreRejectsUploads(t *testing.T) {
	uc := newProductUsecaseForTest(newFakeProductRepo(), nil)

	_, err := uc.Create(context.Background(), ProductInput{Name: "A", Price: 1},
		[]ProductImage{{FileName: "x.jpg", Data: []byte("x")}})
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}

func TestUpdatePreservesAggregates(t *testing.T) {
	ctx := context.Background()
	existing := catalogProduct("p1", "Old Name", 10)
	existing.Rating = 4.5
	existing.Reviews = 12
	repo := newFakeProductRepo(existing)
	uc := newProductUsecaseForTest(repo, nil)

	p, err := uc.Update(ctx, "p1", ProductInput{Name: "New Name", Price: 20}, nil)
	require.NoError(t, err)

	assert.Equal(t, "New Name", p.Name)
	assert.Equal(t, 20.0, p.Price)
	// the review flow owns these; an admin edit must not reset them
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, 12, p.Reviews)
}

func TestUpdateUnknownProduct(t *testing.T) {
	uc := newProductUsecaseForTest(newFakeProductRepo(), nil)

	_, err := uc.Update(context.Background(), "nope", ProductInput{Name: "X", Price: 1}, nil)
	assert.ErrorIs(t, err, productdom.ErrNotFound)
}

func TestDeleteValidates(t *testing.T) {
	repo := newFakeProductRepo(catalogProduct("p1", "A", 1))
	uc := newProductUsecaseForTest(repo, nil)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "p1"))
	_, err := uc.Get(ctx, "p1")
	assert.ErrorIs(t, err, productdom.ErrNotFound)

	err = uc.Delete(ctx, "  ")
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "image", sanitizeFileName("  "))
	assert.Equal(t, "a_b.jpg", sanitizeFileName("a b.jpg"))
	assert.Equal(t, "a_b.jpg", sanitizeFileName("a/b.jpg"))
}
