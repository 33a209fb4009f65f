package order

// Guard reports why the flow may not leave its current step.
// An empty Reason means Next is allowed.
func Guard(s *State) Reason {
	switch s.Step {
	case StepSelectingMeals:
		if s.Cart.Empty() {
			return ReasonEmptyCart
		}
	case StepEnteringInfo:
		if s.Customer.Name == "" {
			return ReasonMissingName
		}
		if s.Customer.InvoiceCode == "" {
			return ReasonMissingInvoiceCode
		}
	case StepPaying:
		// payment outcome is decided by the gateway, not here
	case StepConfirmed:
		return ReasonAlreadyConfirmed
	}
	return ""
}

// RetreatGuard reports why Back is refused from step, or "" if allowed.
func RetreatGuard(step Step) Reason {
	switch step {
	case StepEnteringInfo, StepPaying:
		return ""
	case StepConfirmed:
		return ReasonAlreadyConfirmed
	default:
		return ReasonAtFirstStep
	}
}
