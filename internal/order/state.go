package order

import (
	"strings"
	"time"
)

// Card is what the customer typed on the payment screen.
// It is handed to the payment gateway and wiped once the order is confirmed.
type Card struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// Masked keeps only the last four digits of the card number.
func (c Card) Masked() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.Number)

	if digits == "" {
		return ""
	}
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// Confirmation is the receipt shown on the last screen.
// OrderNumber is for display only and is not unique.
type Confirmation struct {
	OrderNumber string    `json:"order_number"`
	Date        string    `json:"date"`
	Lines       []Line    `json:"-"`
	Total       int       `json:"total"`
	Name        string    `json:"name"`
	InvoiceCode string    `json:"invoice_code"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// State is everything one customer has entered in the wizard.
type State struct {
	Date         string
	Cart         Cart
	Customer     CustomerInfo
	Card         Card
	Step         Step
	Confirmation *Confirmation
}

func NewState() *State {
	return &State{Step: StepSelectingMeals}
}

// SelectDate switches the delivery date and always empties the cart.
func (s *State) SelectDate(date string) {
	s.Date = date
	s.Cart.Clear()
}
