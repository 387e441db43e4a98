// internal/application/usecase/cart_freshness_test.go
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "dreamweave/internal/domain/cart"
)

func TestRefreshLinesUpdatesCachedFields(t *testing.T) {
	catalog := newFakeCatalog(catalogProduct("p1", "New Name", 99))
	lines := []cartdom.Line{
		{ProductID: "p1", Name: "Old Name", UnitPrice: 10, ImageRef: "old.jpg", Size: "Queen", Quantity: 3},
	}

	out := RefreshLines(context.Background(), lines, catalog)

	require.Len(t, out, 1)
	assert.Equal(t, "New Name", out[0].Name)
	assert.Equal(t, 99.0, out[0].UnitPrice)
	assert.Equal(t, "img-p1", out[0].ImageRef)
	// identity and quantity are untouched
	assert.Equal(t, "p1", out[0].ProductID)
	assert.Equal(t, "Queen", out[0].Size)
	assert.Equal(t, 3, out[0].Quantity)
}

func TestRefreshLinesKeepsLineWhenProductGone(t *testing.T) {
	catalog := newFakeCatalog() // empty: every lookup is not-found
	lines := []cartdom.Line{
		{ProductID: "gone", Name: "Cached", UnitPrice: 10, Size: "Queen", Quantity: 1},
	}

	out := RefreshLines(context.Background(), lines, catalog)

	require.Len(t, out, 1)
	assert.Equal(t, "Cached", out[0].Name)
	assert.Equal(t, 10.0, out[0].UnitPrice)
}

func TestRefreshLinesKeepsLineOnLookupError(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.lookupErr = errIO
	lines := []cartdom.Line{
		{ProductID: "p1", Name: "Cached", UnitPrice: 10, Size: "Queen", Quantity: 1},
	}

	out := RefreshLines(context.Background(), lines, catalog)

	require.Len(t, out, 1)
	assert.Equal(t, "Cached", out[0].Name)
}

func TestRefreshLinesDoesNotMutateInput(t *testing.T) {
	catalog := newFakeCatalog(catalogProduct("p1", "New Name", 99))
	lines := []cartdom.Line{
		{ProductID: "p1", Name: "Old Name", UnitPrice: 10, Size: "Queen", Quantity: 1},
	}

	_ = RefreshLines(context.Background(), lines, catalog)

	assert.Equal(t, "Old Name", lines[0].Name)
}

func TestRefreshLinesNilCatalogOrEmpty(t *testing.T) {
	lines := []cartdom.Line{{ProductID: "p1", Size: "Queen", Quantity: 1}}
	assert.Equal(t, lines, RefreshLines(context.Background(), lines, nil))
	assert.Nil(t, RefreshLines(context.Background(), nil, newFakeCatalog()))
}
