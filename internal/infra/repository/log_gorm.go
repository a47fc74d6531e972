package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

// LogGormRepository stores audit and notification records.
type LogGormRepository struct {
	db *gorm.DB
}

func NewLogGormRepository(db *gorm.DB) *LogGormRepository {
	return &LogGormRepository{db: db}
}

func (r *LogGormRepository) InsertAuditLog(ctx context.Context, l *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LogGormRepository) InsertNotificationLog(ctx context.Context, l *models.NotificationLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

type AuditLogFilter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (r *LogGormRepository) ListAuditLogs(
	ctx context.Context,
	f AuditLogFilter,
) ([]models.AuditLog, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *LogGormRepository) ListNotificationLogs(
	ctx context.Context,
	appointmentID string,
) ([]models.NotificationLog, error) {

	var logs []models.NotificationLog
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
