// internal/adapters/out/mail/order_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	orderdom "dreamweave/internal/domain/order"
)

// OrderConfirmationMailer formats and sends the post-checkout confirmation.
// Implements usecase.OrderMailer.
type OrderConfirmationMailer struct {
	client *SendGridClient
	from   string
}

func NewOrderConfirmationMailer(client *SendGridClient, from string) *OrderConfirmationMailer {
	return &OrderConfirmationMailer{client: client, from: from}
}

func (m *OrderConfirmationMailer) SendConfirmation(ctx context.Context, o *orderdom.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}
	to := strings.TrimSpace(o.ShippingDetails.Email)
	if to == "" {
		return fmt.Errorf("order %s has no shipping email", o.ID)
	}

	subject := fmt.Sprintf("Your DreamWeave order %s", o.Number)
	body := formatConfirmation(o)

	return m.client.Send(ctx, m.from, to, subject, body)
}

func formatConfirmation(o *orderdom.Order) string {
	var b strings.Builder

	name := strings.TrimSpace(o.ShippingDetails.FirstName)
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "Thanks for your order! Your order number is %s.\n\n", o.Number)

	b.WriteString("Items:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "  - %s (%s) x%d  $%.2f\n", it.Name, it.Size, it.Quantity, it.UnitPrice*float64(it.Quantity))
	}

	fmt.Fprintf(&b, "\nSubtotal: $%.2f\n", o.Subtotal)
	if o.Shipping == 0 {
		b.WriteString("Shipping: FREE\n")
	} else {
		fmt.Fprintf(&b, "Shipping: $%.2f\n", o.Shipping)
	}
	fmt.Fprintf(&b, "Tax: $%.2f\n", o.Tax)
	fmt.Fprintf(&b, "Total: $%.2f\n\n", o.Amount)

	fmt.Fprintf(&b, "Shipping to:\n  %s %s\n  %s\n  %s, %s %s\n  %s\n\n",
		o.ShippingDetails.FirstName, o.ShippingDetails.LastName,
		o.ShippingDetails.Address,
		o.ShippingDetails.City, o.ShippingDetails.State, o.ShippingDetails.ZipCode,
		o.ShippingDetails.Country)

	b.WriteString("We'll let you know when it ships.\n\nDreamWeave\n")
	return b.String()
}
