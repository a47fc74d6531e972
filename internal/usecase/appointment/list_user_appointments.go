package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

type ListUserAppointments struct {
	repo domain.Repository
}

func NewListUserAppointments(repo domain.Repository) *ListUserAppointments {
	return &ListUserAppointments{repo: repo}
}

func (uc *ListUserAppointments) Execute(
	ctx context.Context,
	identity domain.Identity,
) ([]models.Appointment, error) {

	if identity.IsZero() {
		return nil, domain.ErrUnauthenticated
	}

	return uc.repo.ListAppointmentsForOwner(ctx, identity.UserID)
}
