// internal/domain/order/entity_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "dreamweave/internal/domain/cart"
)

func TestComputeCharges(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     float64
		wantShipping float64
	}{
		{"below threshold pays flat rate", 50, ShippingFlatRate},
		{"exactly at threshold still pays", 100, ShippingFlatRate},
		{"above threshold ships free", 100.01, 0},
		{"well above threshold ships free", 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shipping, tax, total := ComputeCharges(tt.subtotal)
			assert.Equal(t, tt.wantShipping, shipping)
			assert.InDelta(t, tt.subtotal*TaxRate, tax, 1e-9)
			assert.InDelta(t, tt.subtotal+shipping+tax, total, 1e-9)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Shipped", "Delivered"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), st)
	}

	st, err := ParseStatus(" Shipped ")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, st)

	_, err = ParseStatus("shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewComputesChargesAndStartsPending(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []cartdom.Line{
		{ProductID: "p1", Size: "Queen", UnitPrice: 60, Quantity: 2},
	}

	o, err := New("oid-1", "DW-ABC123XYZ", "user-1", items, ShippingDetails{Email: "a@b.c"}, now)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, now, o.OrderDate)
	assert.InDelta(t, 120.0, o.Subtotal, 1e-9)
	assert.Zero(t, o.Shipping) // over the free-shipping threshold
	assert.InDelta(t, 120*TaxRate, o.Tax, 1e-9)
	assert.InDelta(t, 120+120*TaxRate, o.Amount, 1e-9)
}

func TestNewRejectsMissingFields(t *testing.T) {
	now := time.Now()
	items := []cartdom.Line{{ProductID: "p1", Size: "Queen", UnitPrice: 1, Quantity: 1}}

	_, err := New("", "n", "u", items, ShippingDetails{}, now)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = New("id", "n", "", items, ShippingDetails{}, now)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = New("id", "n", "u", nil, ShippingDetails{}, now)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestContainsProduct(t *testing.T) {
	o := &Order{Items: []cartdom.Line{
		{ProductID: "p1", Size: "Queen", Quantity: 1},
		{ProductID: "p2", Size: "King", Quantity: 1},
	}}

	assert.True(t, o.ContainsProduct("p1"))
	assert.True(t, o.ContainsProduct("p2"))
	assert.False(t, o.ContainsProduct("p3"))

	var nilOrder *Order
	assert.False(t, nilOrder.ContainsProduct("p1"))
}
