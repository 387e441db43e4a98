// internal/application/usecase/fakes_test.go
package usecase

import (
	"context"
	"errors"
	"time"

	cartdom "dreamweave/internal/domain/cart"
	orderdom "dreamweave/internal/domain/order"
	productdom "dreamweave/internal/domain/product"
	reviewdom "dreamweave/internal/domain/review"
)

// fixedClock pins time for deterministic assertions.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// ---- cart ----

type fakeGuestStore struct {
	lines   []cartdom.Line
	loadErr error
	saveErr error
	saves   int
	clears  int
}

func (f *fakeGuestStore) Load(ctx context.Context) ([]cartdom.Line, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]cartdom.Line, len(f.lines))
	copy(out, f.lines)
	return out, nil
}

func (f *fakeGuestStore) Save(ctx context.Context, lines []cartdom.Line) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.lines = make([]cartdom.Line, len(lines))
	copy(f.lines, lines)
	return nil
}

func (f *fakeGuestStore) Clear(ctx context.Context) error {
	f.clears++
	f.lines = nil
	return nil
}

type fakeRemoteCart struct {
	carts   map[string][]cartdom.Line
	getErr  error
	saveErr error
	saves   int
}

func newFakeRemoteCart() *fakeRemoteCart {
	return &fakeRemoteCart{carts: map[string][]cartdom.Line{}}
}

func (f *fakeRemoteCart) Get(ctx context.Context, userID string) ([]cartdom.Line, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	lines, ok := f.carts[userID]
	if !ok {
		return nil, nil
	}
	out := make([]cartdom.Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (f *fakeRemoteCart) Save(ctx context.Context, userID string, lines []cartdom.Line) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	cp := make([]cartdom.Line, len(lines))
	copy(cp, lines)
	f.carts[userID] = cp
	return nil
}

func (f *fakeRemoteCart) Delete(ctx context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

// ---- catalog ----

type fakeCatalog struct {
	products  map[string]*productdom.Product
	lookupErr error
}

func newFakeCatalog(products ...*productdom.Product) *fakeCatalog {
	m := map[string]*productdom.Product{}
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeCatalog{products: m}
}

func (f *fakeCatalog) Lookup(ctx context.Context, productID string) (*productdom.Product, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	p, ok := f.products[productID]
	if !ok {
		return nil, productdom.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// ---- product repository ----

type fakeProductRepo struct {
	products   map[string]*productdom.Product
	aggregates map[string][2]float64 // productID -> {rating, count}
	aggErr     error
}

func newFakeProductRepo(products ...*productdom.Product) *fakeProductRepo {
	m := map[string]*productdom.Product{}
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m, aggregates: map[string][2]float64{}}
}

func (f *fakeProductRepo) GetByID(ctx context.Context, productID string) (*productdom.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, productdom.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(ctx context.Context) ([]productdom.Product, error) {
	var out []productdom.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p *productdom.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *productdom.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, productID string) error {
	delete(f.products, productID)
	return nil
}

func (f *fakeProductRepo) UpdateAggregateRating(ctx context.Context, productID string, rating float64, reviews int) error {
	if f.aggErr != nil {
		return f.aggErr
	}
	f.aggregates[productID] = [2]float64{rating, float64(reviews)}
	if p, ok := f.products[productID]; ok {
		p.Rating = rating
		p.Reviews = reviews
	}
	return nil
}

// ---- orders ----

type fakeOrderRepo struct {
	orders    []orderdom.Order
	createErr error
	listErr   error
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *orderdom.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID string) ([]orderdom.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []orderdom.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context) ([]orderdom.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]orderdom.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID, userID string, status orderdom.Status) error {
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
			return nil
		}
	}
	return orderdom.ErrNotFound
}

// ---- reviews ----

type fakeReviewRepo struct {
	reviews []reviewdom.Review
	listErr error
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID string) ([]reviewdom.Review, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []reviewdom.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) GetByUser(ctx context.Context, productID, userID string) (*reviewdom.Review, error) {
	for _, r := range f.reviews {
		if r.ProductID == productID && r.UserID == userID {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Create(ctx context.Context, r *reviewdom.Review) error {
	for _, existing := range f.reviews {
		if existing.ProductID == r.ProductID && existing.UserID == r.UserID {
			return reviewdom.ErrAlreadyReviewed
		}
	}
	f.reviews = append(f.reviews, *r)
	return nil
}

// ---- mail ----

type fakeMailer struct {
	sent    []string // order numbers
	sendErr error
}

func (f *fakeMailer) SendConfirmation(ctx context.Context, o *orderdom.Order) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, o.Number)
	return nil
}

var errIO = errors.New("datastore unavailable")
