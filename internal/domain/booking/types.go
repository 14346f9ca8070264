package booking

type Status string

const (
	StatusDraft Status = "draft"
	// StatusFinalizing marks a draft with an order-creation call in flight.
	// No mutation is allowed until the call resolves or is reconciled.
	StatusFinalizing Status = "finalizing"
	StatusConfirmed  Status = "confirmed"
	StatusExpired    Status = "expired"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusFinalizing, StatusConfirmed, StatusExpired, StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the draft can never be mutated again.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusConfirmed, StatusExpired, StatusFailed:
		return true
	default:
		return false
	}
}

type PassengerType string

const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

func (t PassengerType) IsValid() bool {
	switch t {
	case PassengerAdult, PassengerChild, PassengerInfant:
		return true
	default:
		return false
	}
}
