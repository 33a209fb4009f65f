package order

import "github.com/aurodavid1986/ordering-app/internal/menu"

const (
	ProgressDone    = "done"
	ProgressCurrent = "current"
	ProgressPending = "pending"
)

const (
	ActionNext           = "next"
	ActionConfirmPayment = "confirm_payment"
)

type ProgressStep struct {
	Step   Step   `json:"step"`
	Name   string `json:"name"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

// MenuEntry is a dish on the selected day plus its cart state.
type MenuEntry struct {
	menu.Item
	Selected bool `json:"selected"`
	Quantity int  `json:"quantity"`
}

type LineView struct {
	ItemID    int    `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int    `json:"subtotal"`
}

// View is what a client needs to draw the current screen.
type View struct {
	Step     Step           `json:"step"`
	StepName string         `json:"step_name"`
	Progress []ProgressStep `json:"progress"`

	Dates []menu.Day  `json:"dates,omitempty"`
	Date  string      `json:"date"`
	Menu  []MenuEntry `json:"menu,omitempty"`

	Lines []LineView `json:"lines"`
	Total int        `json:"total"`

	Customer CustomerInfo `json:"customer"`
	Card     string       `json:"card,omitempty"`

	CanAdvance bool   `json:"can_advance"`
	Blocker    Reason `json:"blocker,omitempty"`
	Action     string `json:"action,omitempty"`
	CanRetreat bool   `json:"can_retreat"`

	Confirmation *Confirmation `json:"confirmation,omitempty"`
}

// Render selects what to show for the state's current step.
// It never mutates the state.
func Render(s *State, catalog Catalog) View {
	v := View{
		Step:     s.Step,
		StepName: s.Step.String(),
		Progress: progress(s.Step),
		Date:     s.Date,
		Lines:    lineViews(s.Cart.Lines()),
		Total:    s.Cart.Total(),
		Customer: s.Customer,
		Card:     s.Card.Masked(),
	}

	if s.Step == StepSelectingMeals {
		v.Dates = catalog.Days()
		if s.Date != "" {
			v.Menu = menuEntries(catalog.ItemsFor(s.Date), &s.Cart)
		}
	}

	v.Blocker = Guard(s)
	v.CanAdvance = v.Blocker == ""
	v.CanRetreat = RetreatGuard(s.Step) == ""

	switch s.Step {
	case StepPaying:
		v.Action = ActionConfirmPayment
	case StepConfirmed:
		if s.Confirmation != nil {
			c := *s.Confirmation
			v.Confirmation = &c
			v.Lines = lineViews(c.Lines)
			v.Total = c.Total
		}
	default:
		v.Action = ActionNext
	}

	return v
}

func progress(current Step) []ProgressStep {
	out := make([]ProgressStep, len(Steps))
	for i, st := range Steps {
		status := ProgressPending
		switch {
		case st < current:
			status = ProgressDone
		case st == current:
			status = ProgressCurrent
		}
		out[i] = ProgressStep{Step: st, Name: st.String(), Label: st.Label(), Status: status}
	}
	return out
}

func lineViews(lines []Line) []LineView {
	out := make([]LineView, len(lines))
	for i, l := range lines {
		out[i] = LineView{
			ItemID:    l.Item.ID,
			Name:      l.Item.Name,
			UnitPrice: l.Item.Price,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		}
	}
	return out
}

func menuEntries(items []menu.Item, cart *Cart) []MenuEntry {
	out := make([]MenuEntry, len(items))
	for i, item := range items {
		q, ok := cart.Quantity(item.ID)
		out[i] = MenuEntry{Item: item, Selected: ok, Quantity: q}
	}
	return out
}
