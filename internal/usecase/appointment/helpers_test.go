package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/showroom-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
	"github.com/BruksfildServices01/showroom-scheduler/internal/notification"
)

var defaultGrid = domain.SlotGrid{StartHour: 9, EndHour: 18, IncrementMinutes: 30}

var (
	customer = domain.Identity{UserID: "u1", Email: "u1@example.com", Role: "customer"}
	other    = domain.Identity{UserID: "u2", Email: "u2@example.com", Role: "customer"}
	admin    = domain.Identity{UserID: "admin-1", Email: "staff@example.com", Role: domain.RoleAdmin}
)

func newAuditDispatcher(t *testing.T, store audit.Store) *audit.Dispatcher {
	t.Helper()
	d := audit.NewDispatcher(audit.New(store), zap.NewNop(), 50)
	t.Cleanup(d.Close)
	return d
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notification.Notice
}

func (n *recordingNotifier) Notify(notice notification.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

// failingRepo wraps the in-memory store and fails the selected calls.
type failingRepo struct {
	*repository.MemoryRepository
	readErr  error
	writeErr error
}

func (r *failingRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if r.writeErr != nil {
		return domain.WriteError("create appointment", r.writeErr)
	}
	return r.MemoryRepository.CreateAppointment(ctx, ap)
}

func (r *failingRepo) UpdateAppointmentStatus(ctx context.Context, ap *models.Appointment, from domain.Status) error {
	if r.writeErr != nil {
		return domain.WriteError("update appointment status", r.writeErr)
	}
	return r.MemoryRepository.UpdateAppointmentStatus(ctx, ap, from)
}

func (r *failingRepo) ListConfirmedForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	if r.readErr != nil {
		return nil, domain.ReadError("list confirmed appointments", r.readErr)
	}
	return r.MemoryRepository.ListConfirmedForDate(ctx, date)
}

var errConnRefused = errors.New("connection refused")

func seed(t *testing.T, repo domain.Repository, id, owner, date, time, status string) {
	t.Helper()
	err := repo.CreateAppointment(context.Background(), &models.Appointment{
		ID:      id,
		OwnerID: owner,
		Date:    date,
		Time:    time,
		Status:  status,
	})
	if err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}
