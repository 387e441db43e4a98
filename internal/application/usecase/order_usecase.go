// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	cartdom "dreamweave/internal/domain/cart"
	"dreamweave/internal/domain/common"
	orderdom "dreamweave/internal/domain/order"
)

// OrderMailer sends the post-checkout confirmation. Best-effort: a mail
// failure never fails the order.
type OrderMailer interface {
	SendConfirmation(ctx context.Context, o *orderdom.Order) error
}

// OrderUsecase places orders from the cart and serves order history,
// including the admin status flow.
type OrderUsecase struct {
	orders orderdom.Repository
	cart   cartdom.RemoteRepository
	mailer OrderMailer // optional
	clock  Clock
}

func NewOrderUsecase(orders orderdom.Repository, cart cartdom.RemoteRepository, mailer OrderMailer) *OrderUsecase {
	return &OrderUsecase{orders: orders, cart: cart, mailer: mailer, clock: systemClock{}}
}

// NewOrderUsecaseWithClock is useful for tests.
func NewOrderUsecaseWithClock(orders orderdom.Repository, cart cartdom.RemoteRepository, mailer OrderMailer, clock Clock) *OrderUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &OrderUsecase{orders: orders, cart: cart, mailer: mailer, clock: clock}
}

// Checkout places a Pending order from the user's stored cart, clears the
// cart, and sends the confirmation mail (best-effort).
// Payment capture is out of scope; the order is accepted as paid.
func (uc *OrderUsecase) Checkout(ctx context.Context, userID string, ship orderdom.ShippingDetails) (*orderdom.Order, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, common.Ef(common.KindValidation, "order_usecase.Checkout", "empty userID")
	}

	lines, err := uc.cart.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	lines = cartdom.NormalizeLines(lines)
	if len(lines) == 0 {
		return nil, common.Ef(common.KindValidation, "order_usecase.Checkout", "cart is empty")
	}

	id := uuid.NewString()
	o, err := orderdom.New(id, orderNumber(id), uid, lines, ship, uc.clock.Now())
	if err != nil {
		return nil, common.E(common.KindValidation, "order_usecase.Checkout", err)
	}

	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	// Cart consumption after the order is durable. A failure here leaves a
	// stale cart, which the user can clear; the order itself is safe.
	if err := uc.cart.Delete(ctx, uid); err != nil {
		log.Printf("[order_usecase] cart clear failed after checkout %s: %v", o.Number, err)
	}

	if uc.mailer != nil {
		if err := uc.mailer.SendConfirmation(ctx, o); err != nil {
			log.Printf("[order_usecase] confirmation mail failed for %s: %v", o.Number, err)
		}
	}
	return o, nil
}

// ListMine returns the user's orders, newest first.
func (uc *OrderUsecase) ListMine(ctx context.Context, userID string) ([]orderdom.Order, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, common.Ef(common.KindValidation, "order_usecase.ListMine", "empty userID")
	}
	return uc.orders.ListByUser(ctx, uid)
}

// ListAll returns every order, newest first (admin dashboard).
func (uc *OrderUsecase) ListAll(ctx context.Context) ([]orderdom.Order, error) {
	return uc.orders.ListAll(ctx)
}

// UpdateStatus moves an order to the given status, updating both the
// dashboard copy and the user's copy together.
func (uc *OrderUsecase) UpdateStatus(ctx context.Context, orderID, userID, status string) error {
	oid := strings.TrimSpace(orderID)
	if oid == "" {
		return common.Ef(common.KindValidation, "order_usecase.UpdateStatus", "empty orderID")
	}
	st, err := orderdom.ParseStatus(status)
	if err != nil {
		return common.E(common.KindValidation, "order_usecase.UpdateStatus", err)
	}
	return uc.orders.UpdateStatus(ctx, oid, strings.TrimSpace(userID), st)
}

// orderNumber derives the display number from the order id,
// e.g. "DW-4F7K2M9QX".
func orderNumber(id string) string {
	frag := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(frag) > 9 {
		frag = frag[:9]
	}
	return fmt.Sprintf("DW-%s", frag)
}
