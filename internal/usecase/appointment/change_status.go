package appointment

import (
	"context"

	"github.com/BruksfildServices01/showroom-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
	"github.com/BruksfildServices01/showroom-scheduler/internal/notification"
	"github.com/BruksfildServices01/showroom-scheduler/internal/timezone"
)

type Notifier interface {
	Notify(n notification.Notice)
}

// ChangeStatus is the administrative move out of pending. The status change
// is authoritative; notification happens afterwards and may fail silently.
type ChangeStatus struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
	timezone string
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
	tz string,
) *ChangeStatus {
	return &ChangeStatus{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		timezone: tz,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actor domain.Identity,
	id string,
	newStatus string,
) (*models.Appointment, error) {

	if actor.IsZero() {
		return nil, domain.ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	target, ok := domain.ParseStatus(newStatus)
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := ap.Status

	now := timezone.NowIn(uc.timezone)
	if err := domain.Transition(ap, target, now); err != nil {
		return nil, err
	}

	if target == domain.StatusConfirmed {
		if err := uc.ensureSlotFree(ctx, ap); err != nil {
			return nil, err
		}
	}

	// Conditional on the status read above; a concurrent change wins.
	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, domain.Status(previous)); err != nil {
		return nil, err
	}

	actorID := actor.UserID
	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_" + ap.Status,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   ap.Status,
		},
	})

	uc.notifier.Notify(notification.Notice{
		AppointmentID: ap.ID,
		NewStatus:     ap.Status,
	})

	return ap, nil
}

func (uc *ChangeStatus) ensureSlotFree(ctx context.Context, ap *models.Appointment) error {
	confirmed, err := uc.repo.ListConfirmedForDate(ctx, ap.Date)
	if err != nil {
		return err
	}
	for _, other := range confirmed {
		if other.ID != ap.ID && other.Time == ap.Time {
			return domain.ErrSlotTaken
		}
	}
	return nil
}
