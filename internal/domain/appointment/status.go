package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanConfirm allows pending -> confirmed only.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return ErrInvalidTransition
	}
	return nil
}

// CanCancel allows pending -> cancelled only.
func CanCancel(current Status) error {
	if current != StatusPending {
		return ErrInvalidTransition
	}
	return nil
}

// InitialStatus is the only entry state of a booking.
func InitialStatus() Status {
	return StatusPending
}
