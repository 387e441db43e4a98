// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"

	cartdom "dreamweave/internal/domain/cart"
)

var (
	ErrInvalidOrder  = errors.New("order: invalid")
	ErrInvalidStatus = errors.New("order: invalid status")
	ErrNotFound      = errors.New("order: not found")
)

// Status is the fulfillment state of an order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
)

// ParseStatus accepts the wire spelling of a status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusShipped:
		return StatusShipped, nil
	case StatusDelivered:
		return StatusDelivered, nil
	default:
		return "", ErrInvalidStatus
	}
}

// FreeShippingThreshold / ShippingFlatRate / TaxRate reproduce the checkout math:
// shipping is free above the threshold, tax is a flat percentage of the subtotal.
const (
	FreeShippingThreshold = 100.0
	ShippingFlatRate      = 9.99
	TaxRate               = 0.08
)

// ComputeCharges derives shipping, tax and total from a cart subtotal.
func ComputeCharges(subtotal float64) (shipping, tax, total float64) {
	shipping = ShippingFlatRate
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax = subtotal * TaxRate
	return shipping, tax, subtotal + shipping + tax
}

// ShippingDetails is the address block captured at checkout.
type ShippingDetails struct {
	Email     string `json:"email" firestore:"email"`
	FirstName string `json:"firstName" firestore:"firstName"`
	LastName  string `json:"lastName" firestore:"lastName"`
	Address   string `json:"address" firestore:"address"`
	City      string `json:"city" firestore:"city"`
	State     string `json:"state" firestore:"state"`
	ZipCode   string `json:"zipCode" firestore:"zipCode"`
	Country   string `json:"country" firestore:"country"`
	Phone     string `json:"phone" firestore:"phone"`
}

// Order is a placed order. It is written to both all_orders/{id} and the
// user's own list, and the two copies are updated together on status changes.
type Order struct {
	ID              string          `json:"id" firestore:"id"`
	Number          string          `json:"orderId" firestore:"orderId"` // display number, e.g. DW-4F7K2M9QX
	UserID          string          `json:"userId" firestore:"userId"`
	Items           []cartdom.Line  `json:"items" firestore:"items"`
	Subtotal        float64         `json:"subtotal" firestore:"subtotal"`
	Shipping        float64         `json:"shipping" firestore:"shipping"`
	Tax             float64         `json:"tax" firestore:"tax"`
	Amount          float64         `json:"amount" firestore:"amount"`
	ShippingDetails ShippingDetails `json:"shippingDetails" firestore:"shippingDetails"`
	Status          Status          `json:"status" firestore:"status"`
	OrderDate       time.Time       `json:"orderDate" firestore:"orderDate"`
}

// New builds a Pending order from cart lines.
func New(id, number, userID string, items []cartdom.Line, ship ShippingDetails, now time.Time) (*Order, error) {
	oid := strings.TrimSpace(id)
	uid := strings.TrimSpace(userID)
	if oid == "" || uid == "" || len(items) == 0 {
		return nil, ErrInvalidOrder
	}

	snap := cartdom.Snapshot{Lines: items}
	subtotal := snap.Total()
	shipping, tax, total := ComputeCharges(subtotal)

	return &Order{
		ID:              oid,
		Number:          strings.TrimSpace(number),
		UserID:          uid,
		Items:           snap.CloneLines(),
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Amount:          total,
		ShippingDetails: ship,
		Status:          StatusPending,
		OrderDate:       now,
	}, nil
}

// ContainsProduct reports whether the order includes the product (any size).
func (o *Order) ContainsProduct(productID string) bool {
	if o == nil {
		return false
	}
	pid := strings.TrimSpace(productID)
	for _, it := range o.Items {
		if strings.TrimSpace(it.ProductID) == pid {
			return true
		}
	}
	return false
}
