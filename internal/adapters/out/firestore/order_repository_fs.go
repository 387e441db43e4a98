// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	cartdom "dreamweave/internal/domain/cart"
	orderdom "dreamweave/internal/domain/order"
)

// OrderRepositoryFS implements order.Repository using Firestore.
//
// Dual-write layout:
// - all_orders/{orderId}
// - orders/{userId}/items/{orderId}
// Both copies are written/updated in one batch.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) allCol() *firestore.CollectionRef {
	return r.Client.Collection("all_orders")
}

func (r *OrderRepositoryFS) userCol(userID string) *firestore.CollectionRef {
	return r.Client.Collection("orders").Doc(userID).Collection("items")
}

func (r *OrderRepositoryFS) Create(ctx context.Context, o *orderdom.Order) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}
	if o == nil || strings.TrimSpace(o.ID) == "" || strings.TrimSpace(o.UserID) == "" {
		return errors.New("order_repository_fs: order, ID or UserID is empty")
	}

	doc := orderDocFromDomain(o)
	batch := r.Client.Batch()
	batch.Set(r.allCol().Doc(o.ID), doc)
	batch.Set(r.userCol(o.UserID).Doc(o.ID), doc)
	_, err := batch.Commit(ctx)
	return wrapIOErr("order_repository_fs.Create", err)
}

func (r *OrderRepositoryFS) ListByUser(ctx context.Context, userID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("order_repository_fs: userID is empty")
	}
	return r.listFrom(ctx, r.userCol(uid).Documents(ctx), "order_repository_fs.ListByUser")
}

func (r *OrderRepositoryFS) ListAll(ctx context.Context) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	return r.listFrom(ctx, r.allCol().Documents(ctx), "order_repository_fs.ListAll")
}

func (r *OrderRepositoryFS) listFrom(ctx context.Context, it *firestore.DocumentIterator, op string) ([]orderdom.Order, error) {
	defer it.Stop()

	var out []orderdom.Order
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapIOErr(op, err)
		}
		o := orderFromData(snap.Data())
		o.ID = snap.Ref.ID
		out = append(out, o)
	}

	// Sort in memory (newest first) instead of OrderBy: legacy docs with a
	// string orderDate would otherwise be excluded by the index.
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}

// UpdateStatus updates both copies in one batch. For legacy orders without a
// userId only the dashboard copy exists, so only that one is touched.
func (r *OrderRepositoryFS) UpdateStatus(ctx context.Context, orderID, userID string, status orderdom.Status) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}
	oid := strings.TrimSpace(orderID)
	if oid == "" {
		return errors.New("order_repository_fs: orderID is empty")
	}

	upd := []firestore.Update{{Path: "status", Value: string(status)}}

	batch := r.Client.Batch()
	batch.Update(r.allCol().Doc(oid), upd)
	if uid := strings.TrimSpace(userID); uid != "" {
		batch.Update(r.userCol(uid).Doc(oid), upd)
	}
	_, err := batch.Commit(ctx)
	if isNotFound(err) {
		return orderdom.ErrNotFound
	}
	return wrapIOErr("order_repository_fs.UpdateStatus", err)
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderDoc struct {
	ID              string                  `firestore:"id"`
	Number          string                  `firestore:"orderId"`
	UserID          string                  `firestore:"userId"`
	Items           []cartLineDoc           `firestore:"items"`
	Subtotal        float64                 `firestore:"subtotal"`
	Shipping        float64                 `firestore:"shipping"`
	Tax             float64                 `firestore:"tax"`
	Amount          float64                 `firestore:"amount"`
	ShippingDetails orderShippingDetailsDoc `firestore:"shippingDetails"`
	Status          string                  `firestore:"status"`
	OrderDate       time.Time               `firestore:"orderDate"`
}

type orderShippingDetailsDoc struct {
	Email     string `firestore:"email"`
	FirstName string `firestore:"firstName"`
	LastName  string `firestore:"lastName"`
	Address   string `firestore:"address"`
	City      string `firestore:"city"`
	State     string `firestore:"state"`
	ZipCode   string `firestore:"zipCode"`
	Country   string `firestore:"country"`
	Phone     string `firestore:"phone"`
}

func orderDocFromDomain(o *orderdom.Order) orderDoc {
	return orderDoc{
		ID:       o.ID,
		Number:   o.Number,
		UserID:   o.UserID,
		Items:    lineDocsFromDomain(o.Items),
		Subtotal: o.Subtotal,
		Shipping: o.Shipping,
		Tax:      o.Tax,
		Amount:   o.Amount,
		ShippingDetails: orderShippingDetailsDoc{
			Email:     o.ShippingDetails.Email,
			FirstName: o.ShippingDetails.FirstName,
			LastName:  o.ShippingDetails.LastName,
			Address:   o.ShippingDetails.Address,
			City:      o.ShippingDetails.City,
			State:     o.ShippingDetails.State,
			ZipCode:   o.ShippingDetails.ZipCode,
			Country:   o.ShippingDetails.Country,
			Phone:     o.ShippingDetails.Phone,
		},
		Status:    string(o.Status),
		OrderDate: o.OrderDate,
	}
}

func orderFromData(raw map[string]any) orderdom.Order {
	if raw == nil {
		return orderdom.Order{}
	}

	o := orderdom.Order{
		ID:       asString(raw["id"]),
		Number:   asString(raw["orderId"]),
		UserID:   asString(raw["userId"]),
		Subtotal: asFloat(raw["subtotal"]),
		Shipping: asFloat(raw["shipping"]),
		Tax:      asFloat(raw["tax"]),
		Amount:   asFloat(raw["amount"]),
		Status:   orderdom.Status(strings.TrimSpace(asString(raw["status"]))),
	}
	if t, ok := asTime(raw["orderDate"]); ok {
		o.OrderDate = t
	}

	if itemsAny, ok := raw["items"].([]any); ok {
		for _, v := range itemsAny {
			mv, ok := v.(map[string]any)
			if !ok {
				continue
			}
			o.Items = append(o.Items, cartdom.Line{
				ProductID: asString(mv["productId"]),
				Name:      asString(mv["name"]),
				UnitPrice: asFloat(mv["unitPrice"]),
				ImageRef:  asString(mv["imageRef"]),
				Size:      asString(mv["size"]),
				Color:     asString(mv["color"]),
				Quantity:  asInt(mv["quantity"]),
			})
		}
	}

	if sd, ok := raw["shippingDetails"].(map[string]any); ok {
		o.ShippingDetails = orderdom.ShippingDetails{
			Email:     asString(sd["email"]),
			FirstName: asString(sd["firstName"]),
			LastName:  asString(sd["lastName"]),
			Address:   asString(sd["address"]),
			City:      asString(sd["city"]),
			State:     asString(sd["state"]),
			ZipCode:   asString(sd["zipCode"]),
			Country:   asString(sd["country"]),
			Phone:     asString(sd["phone"]),
		}
	}
	return o
}
