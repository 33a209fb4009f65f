package order

import (
	"context"
	"fmt"
	"math/rand/v2"
)

type PaymentRequest struct {
	Amount int
	Card   Card
}

// PaymentGateway charges the order total when leaving the payment step.
type PaymentGateway interface {
	Charge(ctx context.Context, req PaymentRequest) error
}

type InvoiceRequest struct {
	InvoiceCode string
	Amount      int
	Lines       []Line
}

// InvoiceIssuer sends the e-invoice to the customer's carrier code.
type InvoiceIssuer interface {
	Issue(ctx context.Context, req InvoiceRequest) error
}

// CalendarExporter adds a confirmed order to the customer's calendar.
type CalendarExporter interface {
	Export(ctx context.Context, c Confirmation) error
}

// ApprovingGateway accepts every charge.
type ApprovingGateway struct{}

func (ApprovingGateway) Charge(context.Context, PaymentRequest) error { return nil }

type NoopInvoiceIssuer struct{}

func (NoopInvoiceIssuer) Issue(context.Context, InvoiceRequest) error { return nil }

type NoopCalendarExporter struct{}

func (NoopCalendarExporter) Export(context.Context, Confirmation) error { return nil }

// RandomOrderNumber returns a zero-padded six digit code.
// Collisions are possible and harmless since nothing is stored under it.
func RandomOrderNumber() string {
	return fmt.Sprintf("%06d", rand.IntN(1_000_000))
}
