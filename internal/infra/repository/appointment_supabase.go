package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	postgrest "github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

const (
	tableAppointments     = "appointments"
	tableAuditLogs        = "audit_logs"
	tableNotificationLogs = "notification_logs"
)

// AppointmentSupabaseRepository talks to the hosted store through its
// PostgREST endpoint. The client does not take a context; ctx is only
// checked before each round trip.
type AppointmentSupabaseRepository struct {
	client *supa.Client
}

func NewAppointmentSupabaseRepository(client *supa.Client) *AppointmentSupabaseRepository {
	return &AppointmentSupabaseRepository{client: client}
}

func (r *AppointmentSupabaseRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := ctx.Err(); err != nil {
		return domain.WriteError("create appointment", err)
	}

	now := time.Now().UTC()
	ap.CreatedAt = now
	ap.UpdatedAt = now

	data, _, err := r.client.From(tableAppointments).
		Insert(ap, false, "", "representation", "").
		Execute()
	if err != nil {
		return domain.WriteError("create appointment", err)
	}

	var rows []models.Appointment
	if err := json.Unmarshal(data, &rows); err != nil {
		return domain.WriteError("decode created appointment", err)
	}
	if len(rows) > 0 {
		*ap = rows[0]
	}
	return nil
}

func (r *AppointmentSupabaseRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	rows, err := r.selectAppointments(ctx, "get appointment", map[string]string{"id": id}, "")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

func (r *AppointmentSupabaseRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {
	if err := ctx.Err(); err != nil {
		return domain.WriteError("update appointment status", err)
	}

	ap.UpdatedAt = time.Now().UTC()

	data, _, err := r.client.From(tableAppointments).
		Update(map[string]any{
			"status":       ap.Status,
			"confirmed_at": ap.ConfirmedAt,
			"cancelled_at": ap.CancelledAt,
			"updated_at":   ap.UpdatedAt,
		}, "representation", "").
		Eq("id", ap.ID).
		Eq("status", string(from)).
		Execute()
	if err != nil {
		if strings.Contains(err.Error(), "23505") {
			return domain.ErrSlotTaken
		}
		return domain.WriteError("update appointment status", err)
	}

	var rows []models.Appointment
	if err := json.Unmarshal(data, &rows); err != nil {
		return domain.WriteError("decode updated appointment", err)
	}
	if len(rows) == 0 {
		if _, err := r.GetAppointment(ctx, ap.ID); err != nil {
			return err
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *AppointmentSupabaseRepository) ListConfirmedForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {
	return r.selectAppointments(ctx, "list confirmed appointments", map[string]string{
		"date":   date,
		"status": string(domain.StatusConfirmed),
	}, "time")
}

func (r *AppointmentSupabaseRepository) ListAppointmentsForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {
	return r.selectAppointments(ctx, "list appointments for date", map[string]string{
		"date": date,
	}, "time")
}

func (r *AppointmentSupabaseRepository) ListAppointmentsForOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Appointment, error) {
	return r.selectAppointments(ctx, "list appointments for owner", map[string]string{
		"owner_id": ownerID,
	}, "date")
}

func (r *AppointmentSupabaseRepository) selectAppointments(
	ctx context.Context,
	op string,
	eq map[string]string,
	orderBy string,
) ([]models.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.ReadError(op, err)
	}

	query := r.client.From(tableAppointments).Select("*", "", false)
	for column, value := range eq {
		query = query.Eq(column, value)
	}
	if orderBy != "" {
		query = query.Order(orderBy, &postgrest.OrderOpts{Ascending: true})
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, domain.ReadError(op, err)
	}

	var rows []models.Appointment
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, domain.ReadError(op, err)
	}

	// PostgREST orders by a single column here; ties on date are broken by time.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].Time < rows[j].Time
	})
	return rows, nil
}

var _ domain.Repository = (*AppointmentSupabaseRepository)(nil)

// LogSupabaseRepository writes audit and notification records to the hosted store.
type LogSupabaseRepository struct {
	client *supa.Client
}

func NewLogSupabaseRepository(client *supa.Client) *LogSupabaseRepository {
	return &LogSupabaseRepository{client: client}
}

func (r *LogSupabaseRepository) InsertAuditLog(ctx context.Context, l *models.AuditLog) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return r.insert(ctx, tableAuditLogs, l)
}

func (r *LogSupabaseRepository) InsertNotificationLog(ctx context.Context, l *models.NotificationLog) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return r.insert(ctx, tableNotificationLogs, l)
}

func (r *LogSupabaseRepository) insert(ctx context.Context, table string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.client.From(table).
		Insert(v, false, "", "minimal", "").
		Execute()
	return err
}

func (r *LogSupabaseRepository) ListNotificationLogs(
	ctx context.Context,
	appointmentID string,
) ([]models.NotificationLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, _, err := r.client.From(tableNotificationLogs).
		Select("*", "", false).
		Eq("appointment_id", appointmentID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, err
	}

	logs := make([]models.NotificationLog, 0)
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
