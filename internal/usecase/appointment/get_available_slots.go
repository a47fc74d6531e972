package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
)

type GetAvailableSlots struct {
	repo domain.Repository
	grid domain.SlotGrid
}

func NewGetAvailableSlots(
	repo domain.Repository,
	grid domain.SlotGrid,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo: repo,
		grid: grid,
	}
}

// Execute returns the day's grid in ascending order. Only confirmed
// appointments mark a slot as taken. The date is not validated here.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	date string,
) ([]domain.Slot, error) {

	confirmed, err := uc.repo.ListConfirmedForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.BuildSlots(uc.grid, date, confirmed), nil
}
