// internal/application/usecase/review_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"dreamweave/internal/domain/common"
	orderdom "dreamweave/internal/domain/order"
	productdom "dreamweave/internal/domain/product"
	reviewdom "dreamweave/internal/domain/review"
)

// ReviewUsecase gates review submission and maintains the denormalized
// product rating.
type ReviewUsecase struct {
	reviews  reviewdom.Repository
	orders   orderdom.Repository
	products productdom.Repository
	clock    Clock
}

func NewReviewUsecase(reviews reviewdom.Repository, orders orderdom.Repository, products productdom.Repository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, orders: orders, products: products, clock: systemClock{}}
}

// NewReviewUsecaseWithClock is useful for tests.
func NewReviewUsecaseWithClock(reviews reviewdom.Repository, orders orderdom.Repository, products productdom.Repository, clock Clock) *ReviewUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &ReviewUsecase{reviews: reviews, orders: orders, products: products, clock: clock}
}

// ListByProduct returns a product's reviews, newest first.
func (uc *ReviewUsecase) ListByProduct(ctx context.Context, productID string) ([]reviewdom.Review, error) {
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return nil, common.Ef(common.KindValidation, "review_usecase.ListByProduct", "empty productID")
	}
	return uc.reviews.ListByProduct(ctx, pid)
}

// IsEligible reports whether the user may review the product: true iff at
// least one of the user's orders is Delivered and contains the product.
// Scans the full order history (no pagination).
func (uc *ReviewUsecase) IsEligible(ctx context.Context, userID, productID string) (bool, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return false, common.Ef(common.KindValidation, "review_usecase.IsEligible", "empty userID or productID")
	}

	orders, err := uc.orders.ListByUser(ctx, uid)
	if err != nil {
		return false, err
	}
	for i := range orders {
		if orders[i].Status == orderdom.StatusDelivered && orders[i].ContainsProduct(pid) {
			return true, nil
		}
	}
	return false, nil
}

// HasReviewed reports whether the user already reviewed the product.
func (uc *ReviewUsecase) HasReviewed(ctx context.Context, userID, productID string) (bool, error) {
	r, err := uc.reviews.GetByUser(ctx, strings.TrimSpace(productID), strings.TrimSpace(userID))
	if err != nil {
		return false, err
	}
	return r != nil, nil
}

// Submit stores a review and recomputes the product's aggregate rating.
//
// Eligibility and the one-review-per-user rule are both enforced here, and
// uniqueness again at the storage layer (doc keyed by userId, transactional
// create), so concurrent sessions of the same account cannot double-review.
//
// The aggregate update re-reads the full review list (rounding the average
// to one decimal) rather than keeping a running sum; a failure after the
// review was stored leaves the review in place and the stale aggregate is
// corrected by the next submission.
func (uc *ReviewUsecase) Submit(ctx context.Context, userID, userName, productID string, rating int, comment string) (*reviewdom.Review, error) {
	r, err := reviewdom.New(userID, userName, productID, rating, comment, uc.clock.Now())
	if err != nil {
		return nil, common.E(common.KindValidation, "review_usecase.Submit", err)
	}

	eligible, err := uc.IsEligible(ctx, r.UserID, r.ProductID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, common.E(common.KindUnauthorized, "review_usecase.Submit", reviewdom.ErrNotEligible)
	}

	if err := uc.reviews.Create(ctx, r); err != nil {
		if errors.Is(err, reviewdom.ErrAlreadyReviewed) {
			return nil, common.E(common.KindValidation, "review_usecase.Submit", err)
		}
		return nil, err
	}

	all, err := uc.reviews.ListByProduct(ctx, r.ProductID)
	if err != nil {
		log.Printf("[review_usecase] aggregate read failed for %s: %v (rating left stale)", r.ProductID, err)
		return r, nil
	}
	avg, count := reviewdom.Aggregate(all)
	if err := uc.products.UpdateAggregateRating(ctx, r.ProductID, avg, count); err != nil {
		log.Printf("[review_usecase] aggregate write failed for %s: %v (rating left stale)", r.ProductID, err)
	}
	return r, nil
}
