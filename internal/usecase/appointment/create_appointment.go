package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/showroom-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// rejectConfirmed refuses bookings on a slot that already holds a
	// confirmed appointment. Pending bookings never block each other.
	rejectConfirmed bool
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	rejectConfirmed bool,
) *CreateAppointment {
	return &CreateAppointment{
		repo:            repo,
		audit:           audit,
		rejectConfirmed: rejectConfirmed,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	identity domain.Identity,
	date string,
	time string,
) (*models.Appointment, error) {

	if identity.IsZero() {
		return nil, domain.ErrUnauthenticated
	}

	if uc.rejectConfirmed {
		confirmed, err := uc.repo.ListConfirmedForDate(ctx, date)
		if err != nil {
			return nil, err
		}
		for _, ap := range confirmed {
			if ap.Time == time {
				return nil, domain.ErrSlotTaken
			}
		}
	}

	ap := &models.Appointment{
		ID:           uuid.NewString(),
		OwnerID:      identity.UserID,
		ContactEmail: identity.Email,
		Date:         date,
		Time:         time,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	actor := identity.UserID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"date": ap.Date,
			"time": ap.Time,
		},
	})

	return ap, nil
}
