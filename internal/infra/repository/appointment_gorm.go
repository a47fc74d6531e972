package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/httperr"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (create / lookup)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return domain.WriteError("create appointment", err)
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ReadError("get appointment", err)
	}

	return &ap, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	ap.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(from)).
		Updates(map[string]any{
			"status":       ap.Status,
			"confirmed_at": ap.ConfirmedAt,
			"cancelled_at": ap.CancelledAt,
			"updated_at":   ap.UpdatedAt,
		})
	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return domain.ErrSlotTaken
		}
		return domain.WriteError("update appointment status", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missedUpdate(ctx, ap.ID)
	}

	return nil
}

// missedUpdate tells a missing record apart from one whose status changed
// underneath a conditional update.
func (r *AppointmentGormRepository) missedUpdate(ctx context.Context, id string) error {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return domain.ReadError("check appointment", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrInvalidTransition
}

// --------------------------------------------------
// Availability / listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListConfirmedForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ? AND status = ?", date, string(domain.StatusConfirmed)).
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, domain.ReadError("list confirmed appointments", err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Order("created_at ASC").
		Find(&apps).Error; err != nil {
		return nil, domain.ReadError("list appointments for date", err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date ASC").
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, domain.ReadError("list appointments for owner", err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
