// internal/application/usecase/cart_usecase_test.go
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "dreamweave/internal/domain/cart"
	"dreamweave/internal/domain/common"
)

func newCartUsecaseForTest(remote *fakeRemoteCart, repo *fakeProductRepo, catalog *fakeCatalog) *CartUsecase {
	return NewCartUsecase(remote, repo, catalog)
}

func TestCartGetAbsentCartIsEmpty(t *testing.T) {
	uc := newCartUsecaseForTest(newFakeRemoteCart(), newFakeProductRepo(), newFakeCatalog())

	lines, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartGetRefreshesAgainstCatalog(t *testing.T) {
	remote := newFakeRemoteCart()
	remote.carts["user-1"] = []cartdom.Line{
		{ProductID: "p1", Name: "Old", UnitPrice: 1, Size: "Queen", Quantity: 2},
	}
	catalog := newFakeCatalog(catalogProduct("p1", "Current", 55))

	uc := newCartUsecaseForTest(remote, newFakeProductRepo(), catalog)

	lines, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Current", lines[0].Name)
	assert.Equal(t, 55.0, lines[0].UnitPrice)
}

func TestCartAddItemDefaultsAndSaves(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemoteCart()
	p := catalogProduct("p1", "Sheet", 40)
	p.Colors = []string{"Ivory"}
	repo := newFakeProductRepo(p)

	uc := newCartUsecaseForTest(remote, repo, newFakeCatalog())

	lines, err := uc.AddItem(ctx, "user-1", "p1", 0, "", "")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, cartdom.DefaultSize, lines[0].Size)
	assert.Equal(t, "Ivory", lines[0].Color)
	assert.Equal(t, 1, lines[0].Quantity)

	// merging on repeat add
	lines, err = uc.AddItem(ctx, "user-1", "p1", 2, cartdom.DefaultSize, "")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	stored, err := remote.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stored[0].Quantity)
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	uc := newCartUsecaseForTest(newFakeRemoteCart(), newFakeProductRepo(), newFakeCatalog())

	_, err := uc.AddItem(context.Background(), "user-1", "nope", 1, "", "")
	assert.Error(t, err)
}

func TestCartSetQuantityFloorsAndRemoveIsNoOpWhenAbsent(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemoteCart()
	remote.carts["user-1"] = []cartdom.Line{
		{ProductID: "p1", Size: "Queen", UnitPrice: 1, Quantity: 5},
	}
	uc := newCartUsecaseForTest(remote, newFakeProductRepo(), newFakeCatalog())

	lines, err := uc.SetQuantity(ctx, "user-1", "p1", "Queen", -2)
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Quantity)

	lines, err = uc.RemoveItem(ctx, "user-1", "p2", "Queen")
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	lines, err = uc.RemoveItem(ctx, "user-1", "p1", "Queen")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartSyncAdoptsGuestWhenRemoteEmpty(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemoteCart()
	catalog := newFakeCatalog(catalogProduct("p1", "Fresh", 20))
	uc := newCartUsecaseForTest(remote, newFakeProductRepo(), catalog)

	guest := []cartdom.Line{
		{ProductID: "p1", Name: "Stale", UnitPrice: 5, Size: "Queen", Quantity: 2},
	}

	lines, err := uc.Sync(ctx, "user-1", guest)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Fresh", lines[0].Name)

	// write-through stored the refreshed guest cart
	stored, err := remote.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Fresh", stored[0].Name)
}

func TestCartSyncRemoteWins(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemoteCart()
	remote.carts["user-1"] = []cartdom.Line{
		{ProductID: "p-remote", Size: "King", UnitPrice: 1, Quantity: 1},
	}
	uc := newCartUsecaseForTest(remote, newFakeProductRepo(), newFakeCatalog())

	guest := []cartdom.Line{
		{ProductID: "p-guest", Size: "Queen", UnitPrice: 1, Quantity: 9},
	}

	lines, err := uc.Sync(ctx, "user-1", guest)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "p-remote", lines[0].ProductID)
	assert.Equal(t, 0, remote.saves)
}

func TestCartValidationErrors(t *testing.T) {
	uc := newCartUsecaseForTest(newFakeRemoteCart(), newFakeProductRepo(), newFakeCatalog())
	ctx := context.Background()

	_, err := uc.Get(ctx, " ")
	assert.Equal(t, common.KindValidation, common.KindOf(err))

	_, err = uc.Sync(ctx, "", nil)
	assert.Equal(t, common.KindValidation, common.KindOf(err))

	err = uc.Clear(ctx, "")
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}
