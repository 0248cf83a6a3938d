package domain

// CheckoutStep index of the checkout wizard step
type CheckoutStep int

const (
	StepReview CheckoutStep = iota
	StepGuestInfo
	StepPayment
	StepConfirmation
)

// StepNames названия шагов в порядке визарда
var StepNames = []string{"Review", "Guest Info", "Payment", "Confirmation"}

// IsValid returns true if the step is within the wizard range
func (s CheckoutStep) IsValid() bool {
	return s >= StepReview && s <= StepConfirmation
}

// IsTerminal returns true for the confirmation step
func (s CheckoutStep) IsTerminal() bool {
	return s == StepConfirmation
}

// IsPersistable returns true if progress at this step may be saved
func (s CheckoutStep) IsPersistable() bool {
	return s >= StepReview && s < StepConfirmation
}

func (s CheckoutStep) String() string {
	if !s.IsValid() {
		return "unknown"
	}
	return StepNames[s]
}
