package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

func newChangeStatus(t *testing.T, repo domain.Repository, n Notifier) *ChangeStatus {
	t.Helper()
	return NewChangeStatus(repo, newAuditDispatcher(t, repository.NewMemoryRepository()), n, "America/Sao_Paulo")
}

func TestChangeStatus_ConfirmBlocksSlotAndNotifies(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seed(t, repo, "ap-1", "u1", "2025-03-10", "14:00", "pending")
	n := &recordingNotifier{}
	ctx := context.Background()

	ap, err := newChangeStatus(t, repo, n).Execute(ctx, admin, "ap-1", "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
	require.NotNil(t, ap.ConfirmedAt)
	assert.Nil(t, ap.CancelledAt)

	require.Len(t, n.notices, 1)
	assert.Equal(t, "ap-1", n.notices[0].AppointmentID)
	assert.Equal(t, "confirmed", n.notices[0].NewStatus)

	slots, err := NewGetAvailableSlots(repo, defaultGrid).Execute(ctx, "2025-03-10")
	require.NoError(t, err)
	for _, s := range slots {
		assert.Equal(t, s.Time != "14:00", s.IsAvailable, s.Time)
	}
}

func TestChangeStatus_Cancel(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seed(t, repo, "ap-1", "u1", "2025-03-10", "14:00", "pending")
	n := &recordingNotifier{}

	ap, err := newChangeStatus(t, repo, n).Execute(context.Background(), admin, "ap-1", "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	assert.NotNil(t, ap.CancelledAt)

	stored, err := repo.GetAppointment(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", stored.Status)
	require.Len(t, n.notices, 1)
	assert.Equal(t, "cancelled", n.notices[0].NewStatus)
}

func TestChangeStatus_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		actor   domain.Identity
		id      string
		status  string
		initial string
		wantErr error
	}{
		{name: "anonymous", actor: domain.Identity{}, id: "ap-1", status: "confirmed", initial: "pending", wantErr: domain.ErrUnauthenticated},
		{name: "customer", actor: customer, id: "ap-1", status: "confirmed", initial: "pending", wantErr: domain.ErrForbidden},
		{name: "unknown status", actor: admin, id: "ap-1", status: "archived", initial: "pending", wantErr: domain.ErrInvalidTransition},
		{name: "back to pending", actor: admin, id: "ap-1", status: "pending", initial: "pending", wantErr: domain.ErrInvalidTransition},
		{name: "confirmed is terminal", actor: admin, id: "ap-1", status: "cancelled", initial: "confirmed", wantErr: domain.ErrInvalidTransition},
		{name: "cancelled is terminal", actor: admin, id: "ap-1", status: "confirmed", initial: "cancelled", wantErr: domain.ErrInvalidTransition},
		{name: "missing", actor: admin, id: "nope", status: "confirmed", initial: "pending", wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemoryRepository()
			seed(t, repo, "ap-1", "u1", "2025-03-10", "14:00", tt.initial)
			n := &recordingNotifier{}

			ap, err := newChangeStatus(t, repo, n).Execute(context.Background(), tt.actor, tt.id, tt.status)
			assert.Nil(t, ap)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, n.notices)

			stored, err := repo.GetAppointment(context.Background(), "ap-1")
			require.NoError(t, err)
			assert.Equal(t, tt.initial, stored.Status)
		})
	}
}

func TestChangeStatus_SecondConfirmInSameSlot(t *testing.T) {
	repo := repository.NewMemoryRepository()
	seed(t, repo, "first", "u1", "2025-03-10", "14:00", "pending")
	seed(t, repo, "second", "u2", "2025-03-10", "14:00", "pending")
	n := &recordingNotifier{}
	uc := newChangeStatus(t, repo, n)

	_, err := uc.Execute(context.Background(), admin, "first", "confirmed")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), admin, "second", "confirmed")
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	_, err = uc.Execute(context.Background(), admin, "second", "cancelled")
	assert.NoError(t, err)
	assert.Len(t, n.notices, 2)
}

func TestChangeStatus_StoreWriteFailureSkipsNotification(t *testing.T) {
	mem := repository.NewMemoryRepository()
	seed(t, mem, "ap-1", "u1", "2025-03-10", "14:00", "pending")
	repo := &failingRepo{MemoryRepository: mem, writeErr: errConnRefused}
	n := &recordingNotifier{}

	_, err := newChangeStatus(t, repo, n).Execute(context.Background(), admin, "ap-1", "cancelled")
	assert.True(t, domain.IsStoreError(err, domain.StoreWrite))
	assert.Empty(t, n.notices)
}

// staleRepo serves the first snapshot of each appointment on every read, as
// two admins would see it when both load the record before either writes.
type staleRepo struct {
	*repository.MemoryRepository
	snapshots map[string]models.Appointment
}

func (r *staleRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	if snap, ok := r.snapshots[id]; ok {
		return &snap, nil
	}
	ap, err := r.MemoryRepository.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	r.snapshots[id] = *ap
	return ap, nil
}

func TestChangeStatus_ConcurrentChangeKeepsTerminalState(t *testing.T) {
	mem := repository.NewMemoryRepository()
	seed(t, mem, "ap-1", "u1", "2025-03-10", "14:00", "pending")
	repo := &staleRepo{MemoryRepository: mem, snapshots: map[string]models.Appointment{}}
	n := &recordingNotifier{}
	uc := newChangeStatus(t, repo, n)

	_, err := uc.Execute(context.Background(), admin, "ap-1", "confirmed")
	require.NoError(t, err)

	ap, err := uc.Execute(context.Background(), admin, "ap-1", "cancelled")
	assert.Nil(t, ap)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, err := mem.GetAppointment(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", stored.Status)
	assert.NotNil(t, stored.ConfirmedAt)
	assert.Nil(t, stored.CancelledAt)
	assert.Len(t, n.notices, 1)
}
