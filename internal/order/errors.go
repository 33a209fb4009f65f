package order

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField     = errors.New("unknown customer field")
	ErrStepLocked       = errors.New("not editable on the current step")
	ErrNoDateSelected   = errors.New("no delivery date selected")
	ErrItemNotOnMenu    = errors.New("item is not on the menu for the selected date")
	ErrNotConfirmed     = errors.New("order is not confirmed yet")
	ErrQuantityTooLarge = errors.New("quantity too large for the cart total")
)

// Reason explains why a transition was refused.
type Reason string

const (
	ReasonEmptyCart          Reason = "EMPTY_CART"
	ReasonMissingName        Reason = "MISSING_NAME"
	ReasonMissingInvoiceCode Reason = "MISSING_INVOICE_CODE"
	ReasonAlreadyConfirmed   Reason = "ALREADY_CONFIRMED"
	ReasonAtFirstStep        Reason = "AT_FIRST_STEP"
	ReasonPaymentDeclined    Reason = "PAYMENT_DECLINED"
)

func (r Reason) message() string {
	switch r {
	case ReasonEmptyCart:
		return "select at least one meal"
	case ReasonMissingName:
		return "name is required"
	case ReasonMissingInvoiceCode:
		return "invoice carrier code is required"
	case ReasonAlreadyConfirmed:
		return "order is already confirmed"
	case ReasonAtFirstStep:
		return "already at the first step"
	case ReasonPaymentDeclined:
		return "payment was declined"
	default:
		return string(r)
	}
}

// TransitionError is returned when Next or Back is refused.
// The flow state is left untouched.
type TransitionError struct {
	From   Step
	Reason Reason
	Err    error
}

func (e *TransitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.From, e.Reason.message(), e.Err)
	}
	return fmt.Sprintf("%s: %s", e.From, e.Reason.message())
}

func (e *TransitionError) Unwrap() error { return e.Err }

// ReasonOf extracts the reason code from a refused transition.
func ReasonOf(err error) (Reason, bool) {
	var te *TransitionError
	if errors.As(err, &te) {
		return te.Reason, true
	}
	return "", false
}
