package notification

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

// Status selects one of the fixed customer templates.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

type template struct {
	subject string
	body    string
}

// Body placeholders: {date}, {time}, {id}.
var templates = map[Status]template{
	StatusPending: {
		subject: "We received your showroom visit request",
		body:    "Hi! Your visit request for {date} at {time} is pending review. We will let you know as soon as it is confirmed. Reference: {id}.",
	},
	StatusConfirmed: {
		subject: "Your showroom visit is confirmed",
		body:    "Good news! Your visit on {date} at {time} is confirmed. See you at the showroom. Reference: {id}.",
	},
	StatusRejected: {
		subject: "Your showroom visit could not be scheduled",
		body:    "Unfortunately we cannot receive you on {date} at {time}. Please pick another slot on our website. Reference: {id}.",
	},
	StatusCompleted: {
		subject: "Thanks for visiting our showroom",
		body:    "Thank you for visiting us on {date}. Our team is available for any follow-up on your project. Reference: {id}.",
	},
}

// StatusFor maps an appointment status to its template. Cancelled
// appointments use the rejected wording.
func StatusFor(appointmentStatus string) (Status, bool) {
	switch appointmentStatus {
	case "pending":
		return StatusPending, true
	case "confirmed":
		return StatusConfirmed, true
	case "cancelled", "rejected":
		return StatusRejected, true
	case "completed":
		return StatusCompleted, true
	}
	return "", false
}

// Compose renders the message for ap under status.
func Compose(status Status, ap *models.Appointment) (Message, error) {
	tpl, ok := templates[status]
	if !ok {
		return Message{}, fmt.Errorf("no template for status %q", status)
	}

	r := strings.NewReplacer(
		"{date}", ap.Date,
		"{time}", ap.Time,
		"{id}", ap.ID,
	)

	return Message{
		AppointmentID: ap.ID,
		NewStatus:     ap.Status,
		Template:      status,
		Recipient:     ap.ContactEmail,
		Date:          ap.Date,
		Time:          ap.Time,
		Subject:       tpl.subject,
		Body:          r.Replace(tpl.body),
	}, nil
}
