package appointment

import (
	"context"

	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

// Repository is the appointment store. Implementations return ErrNotFound
// for missing records and *StoreError for every other failure. No locking or
// transactions are exposed; each call is one round trip.
type Repository interface {
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// UpdateAppointmentStatus persists Status, ConfirmedAt and CancelledAt
	// only while the stored status still equals from. A record that moved on
	// yields ErrInvalidTransition; a missing one ErrNotFound.
	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	ListConfirmedForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	// ListAppointmentsForOwner orders by date, then time.
	ListAppointmentsForOwner(
		ctx context.Context,
		ownerID string,
	) ([]models.Appointment, error)
}
