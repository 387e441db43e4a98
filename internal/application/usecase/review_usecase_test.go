// internal/application/usecase/review_usecase_test.go
package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "dreamweave/internal/domain/cart"
	"dreamweave/internal/domain/common"
	orderdom "dreamweave/internal/domain/order"
)

func deliveredOrder(userID, productID string) orderdom.Order {
	return orderdom.Order{
		ID:     "o-" + productID,
		UserID: userID,
		Status: orderdom.StatusDelivered,
		Items:  []cartdom.Line{{ProductID: productID, Size: "Queen", UnitPrice: 1, Quantity: 1}},
	}
}

func newReviewUsecaseForTest(reviews *fakeReviewRepo, orders *fakeOrderRepo, products *fakeProductRepo) *ReviewUsecase {
	clock := fixedClock{t: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	return NewReviewUsecaseWithClock(reviews, orders, products, clock)
}

func TestIsEligibleRequiresDeliveredOrderWithProduct(t *testing.T) {
	ctx := context.Background()
	orders := &fakeOrderRepo{orders: []orderdom.Order{
		deliveredOrder("u1", "p1"),
		{ID: "o2", UserID: "u1", Status: orderdom.StatusPending,
			Items: []cartdom.Line{{ProductID: "p2", Size: "Queen", Quantity: 1}}},
	}}
	uc := newReviewUsecaseForTest(&fakeReviewRepo{}, orders, newFakeProductRepo())

	ok, err := uc.IsEligible(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	// pending order does not qualify
	ok, err = uc.IsEligible(ctx, "u1", "p2")
	require.NoError(t, err)
	assert.False(t, ok)

	// never ordered
	ok, err = uc.IsEligible(ctx, "u1", "p3")
	require.NoError(t, err)
	assert.False(t, ok)

	// someone else's delivery does not qualify
	ok, err = uc.IsEligible(ctx, "u2", "p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitStoresReviewAndUpdatesAggregate(t *testing.T) {
	ctx := context.Background()
	reviews := &fakeReviewRepo{}
	orders := &fakeOrderRepo{orders: []orderdom.Order{deliveredOrder("u1", "p1")}}
	products := newFakeProductRepo(catalogProduct("p1", "Sheet", 10))

	uc := newReviewUsecaseForTest(reviews, orders, products)

	r, err := uc.Submit(ctx, "u1", "Jane", "p1", 4, "soft and durable")
	require.NoError(t, err)
	assert.Equal(t, 4, r.Rating)

	agg, ok := products.aggregates["p1"]
	require.True(t, ok)
	assert.Equal(t, 4.0, agg[0])
	assert.Equal(t, 1.0, agg[1])
}

func TestSubmitAggregateAveragesAcrossUsers(t *testing.T) {
	ctx := context.Background()
	reviews := &fakeReviewRepo{}
	orders := &fakeOrderRepo{orders: []orderdom.Order{
		deliveredOrder("u1", "p1"),
		func() orderdom.Order {
			o := deliveredOrder("u2", "p1")
			o.ID = "o-u2"
			return o
		}(),
	}}
	products := newFakeProductRepo(catalogProduct("p1", "Sheet", 10))
	uc := newReviewUsecaseForTest(reviews, orders, products)

	_, err := uc.Submit(ctx, "u1", "Jane", "p1", 4, "nice")
	require.NoError(t, err)
	_, err = uc.Submit(ctx, "u2", "Ken", "p1", 2, "meh")
	require.NoError(t, err)

	agg := products.aggregates["p1"]
	assert.Equal(t, 3.0, agg[0])
	assert.Equal(t, 2.0, agg[1])
}

func TestSubmitRejectsIneligibleUser(t *testing.T) {
	uc := newReviewUsecaseForTest(&fakeReviewRepo{}, &fakeOrderRepo{}, newFakeProductRepo())

	_, err := uc.Submit(context.Background(), "u1", "Jane", "p1", 5, "never bought it")
	require.Error(t, err)
	assert.Equal(t, common.KindUnauthorized, common.KindOf(err))
}

func TestSubmitRejectsDuplicateReview(t *testing.T) {
	ctx := context.Background()
	reviews := &fakeReviewRepo{}
	orders := &fakeOrderRepo{orders: []orderdom.Order{deliveredOrder("u1", "p1")}}
	products := newFakeProductRepo(catalogProduct("p1", "Sheet", 10))
	uc := newReviewUsecaseForTest(reviews, orders, products)

	_, err := uc.Submit(ctx, "u1", "Jane", "p1", 4, "first")
	require.NoError(t, err)

	_, err = uc.Submit(ctx, "u1", "Jane", "p1", 5, "second")
	require.Error(t, err)
	assert.Equal(t, common.KindValidation, common.KindOf(err))
	assert.Len(t, reviews.reviews, 1)
}

func TestSubmitValidatesInput(t *testing.T) {
	uc := newReviewUsecaseForTest(&fakeReviewRepo{}, &fakeOrderRepo{}, newFakeProductRepo())
	ctx := context.Background()

	_, err := uc.Submit(ctx, "u1", "Jane", "p1", 0, "c")
	assert.Equal(t, common.KindValidation, common.KindOf(err))

	_, err = uc.Submit(ctx, "u1", "Jane", "p1", 3, "  ")
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}

func TestSubmitToleratesAggregateWriteFailure(t *testing.T) {
	ctx := context.Background()
	reviews := &fakeReviewRepo{}
	orders := &fakeOrderRepo{orders: []orderdom.Order{deliveredOrder("u1", "p1")}}
	products := newFakeProductRepo(catalogProduct("p1", "Sheet", 10))
	products.aggErr = errIO
	uc := newReviewUsecaseForTest(reviews, orders, products)

	// the review is accepted even though the rating stays stale
	r, err := uc.Submit(ctx, "u1", "Jane", "p1", 4, "good")
	require.NoError(t, err)
	assert.NotNil(t, r)
	assert.Len(t, reviews.reviews, 1)
}

func TestHasReviewed(t *testing.T) {
	ctx := context.Background()
	reviews := &fakeReviewRepo{}
	orders := &fakeOrderRepo{orders: []orderdom.Order{deliveredOrder("u1", "p1")}}
	products := newFakeProductRepo(catalogProduct("p1", "Sheet", 10))
	uc := newReviewUsecaseForTest(reviews, orders, products)

	ok, err := uc.HasReviewed(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = uc.Submit(ctx, "u1", "Jane", "p1", 4, "good")
	require.NoError(t, err)

	ok, err = uc.HasReviewed(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.True(t, ok)
}
