package notification

import "context"

// Message is the payload every channel delivers. NewStatus is the
// appointment status that triggered it; Template is the wording chosen.
type Message struct {
	AppointmentID string `json:"appointmentId"`
	NewStatus     string `json:"newStatus"`
	Template      Status `json:"template"`
	Recipient     string `json:"recipient"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
}

// Channel delivers one message. Implementations make a single attempt.
type Channel interface {
	Name() string
	Deliver(ctx context.Context, msg Message) error
}
