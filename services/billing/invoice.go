package billing

import (
	"context"
	"fmt"
	"strings"

	"slotwise/models"
	"slotwise/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/invoice"
	"github.com/stripe/stripe-go/v76/invoiceitem"
	"go.uber.org/zap"
)

// InvoiceService creates invoices for confirmed bookings.
type InvoiceService interface {
	CreateBookingInvoice(ctx context.Context, org *models.Organisation, bt *models.BookingType, b *models.Booking) (string, error)
}

// StripeInvoiceService bills through Stripe. The global stripe.Key is set at
// startup from config.
type StripeInvoiceService struct{}

func NewStripeInvoiceService() *StripeInvoiceService {
	return &StripeInvoiceService{}
}

// CreateBookingInvoice adds a line item for the booking and opens a
// send-invoice against the organisation's Stripe customer. Returns the
// Stripe invoice ID.
func (s *StripeInvoiceService) CreateBookingInvoice(ctx context.Context, org *models.Organisation, bt *models.BookingType, b *models.Booking) (string, error) {
	if org.StripeCustomerID == "" {
		return "", fmt.Errorf("organisation %s has no stripe customer", org.ID)
	}
	if bt.Price <= 0 || bt.Currency == "" {
		return "", fmt.Errorf("booking type %s is not priced for invoicing", bt.ID)
	}

	_, err := invoiceitem.New(&stripe.InvoiceItemParams{
		Customer:    stripe.String(org.StripeCustomerID),
		Amount:      stripe.Int64(int64(bt.Price * 100)),
		Currency:    stripe.String(strings.ToLower(bt.Currency)),
		Description: stripe.String(fmt.Sprintf("%s - %s", bt.Name, b.Start.Format("2006-01-02 15:04"))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create invoice item: %w", err)
	}

	inv, err := invoice.New(&stripe.InvoiceParams{
		Customer:         stripe.String(org.StripeCustomerID),
		CollectionMethod: stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:     stripe.Int64(7),
		AutoAdvance:      stripe.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create invoice: %w", err)
	}

	utils.GetLogger().Info("created booking invoice",
		zap.String("bookingId", b.ID), zap.String("invoiceId", inv.ID))
	return inv.ID, nil
}
