package dto

import (
	"time"

	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

// AppointmentListDTO is one row of the customer's booking history.
type AppointmentListDTO struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Status      string     `json:"status"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AdminAppointmentDTO adds the contact details staff need.
type AdminAppointmentDTO struct {
	AppointmentListDTO
	OwnerID      string `json:"owner_id"`
	ContactEmail string `json:"contact_email"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		Date:        ap.Date,
		Time:        ap.Time,
		Status:      ap.Status,
		ConfirmedAt: ap.ConfirmedAt,
		CancelledAt: ap.CancelledAt,
		CreatedAt:   ap.CreatedAt,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}

func AdminFromAppointments(aps []models.Appointment) []AdminAppointmentDTO {
	out := make([]AdminAppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AdminAppointmentDTO{
			AppointmentListDTO: FromAppointment(ap),
			OwnerID:            ap.OwnerID,
			ContactEmail:       ap.ContactEmail,
		})
	}
	return out
}
