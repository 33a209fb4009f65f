package order

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/aurodavid1986/ordering-app/internal/menu"

	"go.uber.org/zap"
)

// Catalog is the part of the menu the flow reads from.
type Catalog interface {
	Days() []menu.Day
	ItemsFor(date string) []menu.Item
	Lookup(date string, id int) (menu.Item, bool)
}

type Option func(*Flow)

func WithPaymentGateway(g PaymentGateway) Option {
	return func(f *Flow) { f.payments = g }
}

func WithInvoiceIssuer(i InvoiceIssuer) Option {
	return func(f *Flow) { f.invoices = i }
}

func WithCalendarExporter(e CalendarExporter) Option {
	return func(f *Flow) { f.calendar = e }
}

func WithOrderNumbers(gen func() string) Option {
	return func(f *Flow) { f.orderNumber = gen }
}

func WithClock(now func() time.Time) Option {
	return func(f *Flow) { f.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(f *Flow) { f.log = l }
}

// Flow drives one customer through the wizard.
// It is not safe for concurrent use; callers serialise access.
type Flow struct {
	state   *State
	catalog Catalog

	payments    PaymentGateway
	invoices    InvoiceIssuer
	calendar    CalendarExporter
	orderNumber func() string
	now         func() time.Time
	log         *zap.Logger
}

func NewFlow(catalog Catalog, opts ...Option) *Flow {
	f := &Flow{
		state:       NewState(),
		catalog:     catalog,
		payments:    ApprovingGateway{},
		invoices:    NoopInvoiceIssuer{},
		calendar:    NoopCalendarExporter{},
		orderNumber: RandomOrderNumber,
		now:         time.Now,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) Step() Step {
	return f.state.Step
}

func (f *Flow) requireStep(step Step) error {
	if f.state.Step != step {
		return fmt.Errorf("%w (current step: %s)", ErrStepLocked, f.state.Step)
	}
	return nil
}

// --------------------------------------------------
// Step 1: date & cart
// --------------------------------------------------

func (f *Flow) SelectDate(date string) error {
	if err := f.requireStep(StepSelectingMeals); err != nil {
		return err
	}
	f.state.SelectDate(date)
	return nil
}

func (f *Flow) ToggleItem(id int) error {
	if err := f.requireStep(StepSelectingMeals); err != nil {
		return err
	}
	if f.state.Date == "" {
		return ErrNoDateSelected
	}

	item, ok := f.catalog.Lookup(f.state.Date, id)
	if !ok {
		return ErrItemNotOnMenu
	}

	return f.state.Cart.Toggle(item)
}

func (f *Flow) SetQuantity(id, quantity int) error {
	if err := f.requireStep(StepSelectingMeals); err != nil {
		return err
	}
	return f.state.Cart.SetQuantity(id, quantity)
}

func (f *Flow) Increment(id int) error {
	if err := f.requireStep(StepSelectingMeals); err != nil {
		return err
	}
	return f.state.Cart.Increment(id)
}

func (f *Flow) Decrement(id int) error {
	if err := f.requireStep(StepSelectingMeals); err != nil {
		return err
	}
	return f.state.Cart.Decrement(id)
}

// --------------------------------------------------
// Step 2: customer details
// --------------------------------------------------

func (f *Flow) SetField(field Field, value string) error {
	if err := f.requireStep(StepEnteringInfo); err != nil {
		return err
	}
	return f.state.Customer.Set(field, value)
}

// --------------------------------------------------
// Step 3: payment
// --------------------------------------------------

func (f *Flow) SetCard(card Card) error {
	if err := f.requireStep(StepPaying); err != nil {
		return err
	}
	f.state.Card = card
	return nil
}

// --------------------------------------------------
// Navigation
// --------------------------------------------------

// Next moves one step forward if the current step's guard holds.
// Leaving the payment step charges the cart total.
func (f *Flow) Next(ctx context.Context) error {
	from := f.state.Step

	if reason := Guard(f.state); reason != "" {
		return &TransitionError{From: from, Reason: reason}
	}

	if from == StepPaying {
		return f.confirm(ctx)
	}

	f.state.Step = from.next()
	return nil
}

// Back moves one step backward. Cart and customer details are kept.
func (f *Flow) Back() error {
	from := f.state.Step

	if reason := RetreatGuard(from); reason != "" {
		return &TransitionError{From: from, Reason: reason}
	}

	f.state.Step = from.prev()
	return nil
}

func (f *Flow) confirm(ctx context.Context) error {
	s := f.state
	total := s.Cart.Total()

	if err := f.payments.Charge(ctx, PaymentRequest{Amount: total, Card: s.Card}); err != nil {
		return &TransitionError{From: StepPaying, Reason: ReasonPaymentDeclined, Err: err}
	}

	lines := s.Cart.Lines()
	s.Confirmation = &Confirmation{
		OrderNumber: f.orderNumber(),
		Date:        s.Date,
		Lines:       lines,
		Total:       total,
		Name:        s.Customer.Name,
		InvoiceCode: s.Customer.InvoiceCode,
		ConfirmedAt: f.now(),
	}
	s.Card = Card{}
	s.Step = StepConfirmed

	// The charge already went through, so a failed invoice does not undo the order.
	err := f.invoices.Issue(ctx, InvoiceRequest{
		InvoiceCode: s.Customer.InvoiceCode,
		Amount:      total,
		Lines:       slices.Clone(lines),
	})
	if err != nil {
		f.log.Warn("invoice issuance failed",
			zap.String("order_number", s.Confirmation.OrderNumber),
			zap.Error(err))
	}

	return nil
}

// ExportCalendar hands the confirmed order to the calendar collaborator.
func (f *Flow) ExportCalendar(ctx context.Context) error {
	if f.state.Confirmation == nil {
		return ErrNotConfirmed
	}
	return f.calendar.Export(ctx, *f.state.Confirmation)
}

func (f *Flow) View() View {
	return Render(f.state, f.catalog)
}
