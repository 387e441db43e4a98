// internal/application/usecase/order_usecase_test.go
package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "dreamweave/internal/domain/cart"
	"dreamweave/internal/domain/common"
	orderdom "dreamweave/internal/domain/order"
)

func newOrderUsecaseForTest(orders *fakeOrderRepo, cart *fakeRemoteCart, mailer OrderMailer) *OrderUsecase {
	clock := fixedClock{t: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	return NewOrderUsecaseWithClock(orders, cart, mailer, clock)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	orders := &fakeOrderRepo{}
	cart := newFakeRemoteCart()
	cart.carts["user-1"] = []cartdom.Line{
		{ProductID: "p1", Size: "Queen", UnitPrice: 60, Quantity: 2},
	}
	mailer := &fakeMailer{}

	uc := newOrderUsecaseForTest(orders, cart, mailer)

	o, err := uc.Checkout(ctx, "user-1", orderdom.ShippingDetails{Email: "a@b.c"})
	require.NoError(t, err)

	assert.Equal(t, orderdom.StatusPending, o.Status)
	assert.InDelta(t, 120.0, o.Subtotal, 1e-9)
	assert.Zero(t, o.Shipping)
	assert.InDelta(t, 120*orderdom.TaxRate, o.Tax, 1e-9)

	assert.True(t, strings.HasPrefix(o.Number, "DW-"))
	assert.Len(t, o.Number, len("DW-")+9)

	require.Len(t, orders.orders, 1)

	// cart consumed
	stored, err := cart.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, stored)

	// confirmation sent
	assert.Equal(t, []string{o.Number}, mailer.sent)
}

func TestCheckoutFlatShippingBelowThreshold(t *testing.T) {
	orders := &fakeOrderRepo{}
	cart := newFakeRemoteCart()
	cart.carts["user-1"] = []cartdom.Line{
		{ProductID: "p1", Size: "Queen", UnitPrice: 25, Quantity: 1},
	}
	uc := newOrderUsecaseForTest(orders, cart, nil)

	o, err := uc.Checkout(context.Background(), "user-1", orderdom.ShippingDetails{})
	require.NoError(t, err)
	assert.Equal(t, orderdom.ShippingFlatRate, o.Shipping)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	uc := newOrderUsecaseForTest(&fakeOrderRepo{}, newFakeRemoteCart(), nil)

	_, err := uc.Checkout(context.Background(), "user-1", orderdom.ShippingDetails{})
	require.Error(t, err)
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}

func TestCheckoutToleratesMailFailure(t *testing.T) {
	orders := &fakeOrderRepo{}
	cart := newFakeRemoteCart()
	cart.carts["user-1"] = []cartdom.Line{
		{ProductID: "p1", Size: "Queen", UnitPrice: 10, Quantity: 1},
	}
	mailer := &fakeMailer{sendErr: errIO}
	uc := newOrderUsecaseForTest(orders, cart, mailer)

	o, err := uc.Checkout(context.Background(), "user-1", orderdom.ShippingDetails{Email: "a@b.c"})
	require.NoError(t, err)
	assert.NotNil(t, o)
	assert.Len(t, orders.orders, 1)
}

func TestCheckoutFailsWhenCreateFails(t *testing.T) {
	orders := &fakeOrderRepo{createErr: errIO}
	cart := newFakeRemoteCart()
	cart.carts["user-1"] = []cartdom.Line{
		{ProductID: "p1", Size: "Queen", UnitPrice: 10, Quantity: 1},
	}
	uc := newOrderUsecaseForTest(orders, cart, nil)

	_, err := uc.Checkout(context.Background(), "user-1", orderdom.ShippingDetails{})
	require.Error(t, err)

	// cart untouched when the order never became durable
	stored, err := cart.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	orders := &fakeOrderRepo{orders: []orderdom.Order{
		{ID: "o1", UserID: "u1", Status: orderdom.StatusPending},
	}}
	uc := newOrderUsecaseForTest(orders, newFakeRemoteCart(), nil)

	require.NoError(t, uc.UpdateStatus(ctx, "o1", "u1", "Shipped"))
	assert.Equal(t, orderdom.StatusShipped, orders.orders[0].Status)

	err := uc.UpdateStatus(ctx, "o1", "u1", "bogus")
	assert.Equal(t, common.KindValidation, common.KindOf(err))

	err = uc.UpdateStatus(ctx, "", "u1", "Shipped")
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}

func TestListMineValidatesUser(t *testing.T) {
	uc := newOrderUsecaseForTest(&fakeOrderRepo{}, newFakeRemoteCart(), nil)
	_, err := uc.ListMine(context.Background(), " ")
	assert.Equal(t, common.KindValidation, common.KindOf(err))
}
