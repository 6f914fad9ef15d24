package transfer

// Step represents the current step of a send-money attempt
type Step string

const (
	// StepRecipient indicates the attempt is waiting for a recipient phone number
	StepRecipient Step = "recipient"
	// StepAmount indicates the recipient is resolved and the amount is being entered
	StepAmount Step = "amount"
	// StepPin indicates the transfer has been previewed and awaits PIN confirmation
	StepPin Step = "pin"
	// StepSuccess indicates the transfer is confirmed and a receipt is available
	StepSuccess Step = "success"
)

// CanTransitionTo checks if a step transition is valid.
// Forward transitions advance one step at a time; Back is allowed from
// Amount and Pin only, and the only way out of Success is a full reset.
func (s Step) CanTransitionTo(target Step) bool {
	validTransitions := map[Step][]Step{
		StepRecipient: {StepAmount},
		StepAmount:    {StepPin, StepRecipient},
		StepPin:       {StepSuccess, StepAmount},
		StepSuccess:   {StepRecipient},
	}

	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}

	for _, step := range allowed {
		if step == target {
			return true
		}
	}

	return false
}
