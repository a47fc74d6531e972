package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute hides other customers' appointments behind ErrNotFound.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	identity domain.Identity,
	id string,
) (*models.Appointment, error) {

	if identity.IsZero() {
		return nil, domain.ErrUnauthenticated
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !identity.IsAdmin() && ap.OwnerID != identity.UserID {
		return nil, domain.ErrNotFound
	}

	return ap, nil
}
