// internal/application/usecase/favorite_usecase.go
package usecase

import (
	"context"
	"strings"

	"dreamweave/internal/domain/common"
	favdom "dreamweave/internal/domain/favorite"
)

// FavoriteUsecase serves the per-user favorites list.
// Favorites exist only for authenticated users; the UI prompts login otherwise.
type FavoriteUsecase struct {
	repo favdom.Repository
}

func NewFavoriteUsecase(repo favdom.Repository) *FavoriteUsecase {
	return &FavoriteUsecase{repo: repo}
}

// List returns the user's favorited product ids.
func (uc *FavoriteUsecase) List(ctx context.Context, userID string) ([]string, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, common.Ef(common.KindValidation, "favorite_usecase.List", "empty userID")
	}
	return uc.repo.List(ctx, uid)
}

// IsFavorite reports membership.
func (uc *FavoriteUsecase) IsFavorite(ctx context.Context, userID, productID string) (bool, error) {
	ids, err := uc.List(ctx, userID)
	if err != nil {
		return false, err
	}
	pid := strings.TrimSpace(productID)
	for _, id := range ids {
		if id == pid {
			return true, nil
		}
	}
	return false, nil
}

// Toggle flips the favorite state of productID and returns the new state.
func (uc *FavoriteUsecase) Toggle(ctx context.Context, userID, productID string) (nowFavorite bool, err error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return false, common.Ef(common.KindValidation, "favorite_usecase.Toggle", "empty userID or productID")
	}

	favorited, err := uc.IsFavorite(ctx, uid, pid)
	if err != nil {
		return false, err
	}
	if favorited {
		if err := uc.repo.RemoveByProduct(ctx, uid, pid); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := uc.repo.Add(ctx, uid, pid); err != nil {
		return false, err
	}
	return true, nil
}
