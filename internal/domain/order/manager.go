package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// ConfirmationSubject is the subject line of order confirmation mail.
const ConfirmationSubject = "Order Confirmation"

// Mailer delivers a message to a recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Manager renders orders as text and hands confirmations to a Mailer.
type Manager struct {
	mailer Mailer
}

// NewManager creates a Manager delivering through mailer.
func NewManager(mailer Mailer) *Manager {
	return &Manager{mailer: mailer}
}

// Format renders the order lines with their unit prices and the total.
func (m *Manager) Format(o *Order) string {
	var sb strings.Builder
	sb.WriteString("Order Details:\n")
	for _, it := range o.items {
		fmt.Fprintf(&sb, "%s - $%s\n", it.Name(), it.UnitPrice().StringFixed(2))
	}
	fmt.Fprintf(&sb, "Total: $%s", o.TotalPrice().StringFixed(2))
	return sb.String()
}

// ConfirmationBody returns the greeting followed by the formatted order.
func (m *Manager) ConfirmationBody(o *Order) string {
	return fmt.Sprintf("Thank you for your order, %s!\n\n%s", o.CustomerName, m.Format(o))
}

// SendConfirmation mails the confirmation to the order's customer.
func (m *Manager) SendConfirmation(ctx context.Context, o *Order) error {
	if err := m.mailer.Send(ctx, o.CustomerEmail, ConfirmationSubject, m.ConfirmationBody(o)); err != nil {
		return errors.Wrapf(err, "send confirmation for order %s", o.ID)
	}
	return nil
}

// Print logs the formatted order.
func (m *Manager) Print(ctx context.Context, o *Order) {
	zctx.From(ctx).Info("Order",
		zap.String("order_id", o.ID),
		zap.String("details", m.Format(o)),
	)
}
