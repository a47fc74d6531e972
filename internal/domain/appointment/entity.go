package appointment

import (
	"time"

	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Transition applies the administrative move to target.
func Transition(ap *models.Appointment, target Status, now time.Time) error {
	switch target {
	case StatusConfirmed:
		return Confirm(ap, now)
	case StatusCancelled:
		return Cancel(ap, now)
	default:
		return ErrInvalidTransition
	}
}
