package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

// MemoryRepository keeps every record in process memory. It backs the
// "memory" store driver for local runs without a database.
type MemoryRepository struct {
	mu            sync.RWMutex
	appointments  map[string]models.Appointment
	users         map[string]models.User
	audit         []models.AuditLog
	notifications []models.NotificationLog
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		appointments: make(map[string]models.Appointment),
		users:        make(map[string]models.User),
	}
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *MemoryRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := ctx.Err(); err != nil {
		return domain.WriteError("create appointment", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	ap.CreatedAt = now
	ap.UpdatedAt = now
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.ReadError("get appointment", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (r *MemoryRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {
	if err := ctx.Err(); err != nil {
		return domain.WriteError("update appointment status", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Status != string(from) {
		return domain.ErrInvalidTransition
	}

	// Mirrors the partial unique index on confirmed (date, time).
	if ap.Status == string(domain.StatusConfirmed) {
		for id, other := range r.appointments {
			if id != ap.ID && other.Date == stored.Date && other.Time == stored.Time &&
				other.Status == string(domain.StatusConfirmed) {
				return domain.ErrSlotTaken
			}
		}
	}

	ap.UpdatedAt = time.Now()
	stored.Status = ap.Status
	stored.ConfirmedAt = ap.ConfirmedAt
	stored.CancelledAt = ap.CancelledAt
	stored.UpdatedAt = ap.UpdatedAt
	r.appointments[ap.ID] = stored
	return nil
}

func (r *MemoryRepository) ListConfirmedForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.filter(ctx, "list confirmed appointments", func(ap models.Appointment) bool {
		return ap.Date == date && ap.Status == string(domain.StatusConfirmed)
	})
}

func (r *MemoryRepository) ListAppointmentsForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.filter(ctx, "list appointments for date", func(ap models.Appointment) bool {
		return ap.Date == date
	})
}

func (r *MemoryRepository) ListAppointmentsForOwner(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	return r.filter(ctx, "list appointments for owner", func(ap models.Appointment) bool {
		return ap.OwnerID == ownerID
	})
}

func (r *MemoryRepository) filter(
	ctx context.Context,
	op string,
	keep func(models.Appointment) bool,
) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.ReadError(op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if keep(ap) {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *MemoryRepository) CreateUser(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, ok := r.users[email]; ok {
		return ErrEmailTaken
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[email] = *u
	return nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// --------------------------------------------------
// Audit / notification records
// --------------------------------------------------

func (r *MemoryRepository) InsertAuditLog(ctx context.Context, l *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = uint(len(r.audit) + 1)
	l.CreatedAt = time.Now()
	r.audit = append(r.audit, *l)
	return nil
}

func (r *MemoryRepository) InsertNotificationLog(ctx context.Context, l *models.NotificationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = uint(len(r.notifications) + 1)
	l.CreatedAt = time.Now()
	r.notifications = append(r.notifications, *l)
	return nil
}

func (r *MemoryRepository) AuditLogs() []models.AuditLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.AuditLog(nil), r.audit...)
}

func (r *MemoryRepository) NotificationLogs() []models.NotificationLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.NotificationLog(nil), r.notifications...)
}

// ListAuditLogs applies the same filter and paging as the gorm store,
// newest first.
func (r *MemoryRepository) ListAuditLogs(
	ctx context.Context,
	f AuditLogFilter,
) ([]models.AuditLog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.AuditLog
	for i := len(r.audit) - 1; i >= 0; i-- {
		l := r.audit[i]
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && l.CreatedAt.After(*f.To) {
			continue
		}
		matched = append(matched, l)
	}

	total := int64(len(matched))
	start := (f.Page - 1) * f.Limit
	if start < 0 || start >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	end := start + f.Limit
	if f.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *MemoryRepository) ListNotificationLogs(
	ctx context.Context,
	appointmentID string,
) ([]models.NotificationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.NotificationLog, 0)
	for _, l := range r.notifications {
		if l.AppointmentID == appointmentID {
			out = append(out, l)
		}
	}
	return out, nil
}

var (
	_ domain.Repository = (*MemoryRepository)(nil)
	_ UserRepository    = (*MemoryRepository)(nil)
)
