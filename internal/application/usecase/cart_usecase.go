// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"strings"

	cartdom "dreamweave/internal/domain/cart"
	"dreamweave/internal/domain/common"
	productdom "dreamweave/internal/domain/product"
)

// CartUsecase serves the authenticated cart over the API surface.
// The per-device session engine (CartSession) covers the anonymous side; this
// usecase is the remote-target half: every operation reads, mutates and saves
// the user's stored cart.
type CartUsecase struct {
	repo     cartdom.RemoteRepository
	products productdom.Repository
	catalog  productdom.Catalog
}

func NewCartUsecase(repo cartdom.RemoteRepository, products productdom.Repository, catalog productdom.Catalog) *CartUsecase {
	return &CartUsecase{repo: repo, products: products, catalog: catalog}
}

// Get returns the user's cart, freshness-refreshed against the live catalog.
// Absent cart is an empty cart, not an error.
func (uc *CartUsecase) Get(ctx context.Context, userID string) ([]cartdom.Line, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, common.Ef(common.KindValidation, "cart_usecase.Get", "empty userID")
	}

	lines, err := uc.repo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return RefreshLines(ctx, cartdom.NormalizeLines(lines), uc.catalog), nil
}

// AddItem adds quantity of a product (size defaults to cart.DefaultSize,
// color to the product's first color) and saves the cart.
func (uc *CartUsecase) AddItem(ctx context.Context, userID, productID string, quantity int, size, color string) ([]cartdom.Line, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return nil, common.Ef(common.KindValidation, "cart_usecase.AddItem", "empty userID or productID")
	}
	if quantity < 1 {
		quantity = 1
	}

	p, err := uc.products.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(size) == "" {
		size = cartdom.DefaultSize
	}
	if strings.TrimSpace(color) == "" && len(p.Colors) > 0 {
		color = p.Colors[0]
	}

	lines, err := uc.repo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	snap := cartdom.Snapshot{Lines: cartdom.NormalizeLines(lines)}
	if err := snap.Add(cartdom.Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageRef:  p.Image,
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	}); err != nil {
		return nil, common.E(common.KindValidation, "cart_usecase.AddItem", err)
	}

	if err := uc.repo.Save(ctx, uid, snap.Lines); err != nil {
		return nil, err
	}
	return snap.CloneLines(), nil
}

// SetQuantity floors the quantity of (productID, size) to 1 and saves.
func (uc *CartUsecase) SetQuantity(ctx context.Context, userID, productID, size string, quantity int) ([]cartdom.Line, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return nil, common.Ef(common.KindValidation, "cart_usecase.SetQuantity", "empty userID or productID")
	}

	lines, err := uc.repo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	snap := cartdom.Snapshot{Lines: cartdom.NormalizeLines(lines)}
	snap.SetQuantity(pid, size, quantity)

	if err := uc.repo.Save(ctx, uid, snap.Lines); err != nil {
		return nil, err
	}
	return snap.CloneLines(), nil
}

// RemoveItem drops (productID, size) and saves. Absent key is a no-op.
func (uc *CartUsecase) RemoveItem(ctx context.Context, userID, productID, size string) ([]cartdom.Line, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return nil, common.Ef(common.KindValidation, "cart_usecase.RemoveItem", "empty userID or productID")
	}

	lines, err := uc.repo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	snap := cartdom.Snapshot{Lines: cartdom.NormalizeLines(lines)}
	snap.Remove(pid, size)

	if err := uc.repo.Save(ctx, uid, snap.Lines); err != nil {
		return nil, err
	}
	return snap.CloneLines(), nil
}

// Clear deletes the stored cart.
func (uc *CartUsecase) Clear(ctx context.Context, userID string) error {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return common.Ef(common.KindValidation, "cart_usecase.Clear", "empty userID")
	}
	return uc.repo.Delete(ctx, uid)
}

// Sync runs the login reconciliation for a client that held a guest cart:
// the device posts its guest lines once after authenticating, receives the
// resolved snapshot back, and clears its local copy on success.
func (uc *CartUsecase) Sync(ctx context.Context, userID string, guest []cartdom.Line) ([]cartdom.Line, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, common.Ef(common.KindValidation, "cart_usecase.Sync", "empty userID")
	}

	remote, err := uc.repo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	adopted, adoptGuest := resolveCarts(remote, guest)
	adopted = RefreshLines(ctx, adopted, uc.catalog)
	if adoptGuest {
		if err := uc.repo.Save(ctx, uid, adopted); err != nil {
			return nil, err
		}
	}
	return adopted, nil
}
