package order

// Step is one screen of the ordering wizard.
type Step int

const (
	StepSelectingMeals Step = iota + 1
	StepEnteringInfo
	StepPaying
	StepConfirmed
)

// Steps lists the wizard in order.
var Steps = []Step{StepSelectingMeals, StepEnteringInfo, StepPaying, StepConfirmed}

func (s Step) String() string {
	switch s {
	case StepSelectingMeals:
		return "selecting_meals"
	case StepEnteringInfo:
		return "entering_info"
	case StepPaying:
		return "paying"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Label is the text shown in the progress indicator.
func (s Step) Label() string {
	switch s {
	case StepSelectingMeals:
		return "Select meals"
	case StepEnteringInfo:
		return "Your details"
	case StepPaying:
		return "Payment"
	case StepConfirmed:
		return "Done"
	default:
		return ""
	}
}

func (s Step) next() Step { return s + 1 }
func (s Step) prev() Step { return s - 1 }
