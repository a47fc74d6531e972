package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	supa "github.com/supabase-community/supabase-go"

	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

func newSupabaseTestClient(t *testing.T, handler http.HandlerFunc) *supa.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := supa.NewClient(srv.URL, "service-key", nil)
	require.NoError(t, err)
	return client
}

func TestAppointmentSupabase_ListConfirmedForDate(t *testing.T) {
	client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/appointments", r.URL.Path)
		assert.Equal(t, "eq.2025-04-01", r.URL.Query().Get("date"))
		assert.Equal(t, "eq.confirmed", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Appointment{
			{ID: "a2", Date: "2025-04-01", Time: "09:30", Status: "confirmed"},
			{ID: "a1", Date: "2025-04-01", Time: "09:00", Status: "confirmed"},
		})
	})
	repo := NewAppointmentSupabaseRepository(client)

	apps, err := repo.ListConfirmedForDate(context.Background(), "2025-04-01")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "09:00", apps[0].Time)
	assert.Equal(t, "09:30", apps[1].Time)
}

func TestAppointmentSupabase_GetAppointment_NotFound(t *testing.T) {
	client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	})
	repo := NewAppointmentSupabaseRepository(client)

	_, err := repo.GetAppointment(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppointmentSupabase_CanceledContext(t *testing.T) {
	client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	repo := NewAppointmentSupabaseRepository(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListAppointmentsForOwner(ctx, "u1")
	assert.True(t, domain.IsStoreError(err, domain.StoreRead))

	err = repo.CreateAppointment(ctx, &models.Appointment{ID: "a1"})
	assert.True(t, domain.IsStoreError(err, domain.StoreWrite))
}

func TestAppointmentSupabase_CreateAppointment(t *testing.T) {
	client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/appointments", r.URL.Path)
		assert.Contains(t, r.Header.Get("Prefer"), "return=representation")

		var sent models.Appointment
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, "2025-04-01", sent.Date)

		sent.ID = "generated-id"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode([]models.Appointment{sent})
	})
	repo := NewAppointmentSupabaseRepository(client)

	ap := &models.Appointment{OwnerID: "u1", Date: "2025-04-01", Time: "09:00", Status: "pending"}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	assert.Equal(t, "generated-id", ap.ID)
	assert.False(t, ap.CreatedAt.IsZero())
}

func TestAppointmentSupabase_CreateAppointment_WriteError(t *testing.T) {
	client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"XX000","message":"boom"}`))
	})
	repo := NewAppointmentSupabaseRepository(client)

	err := repo.CreateAppointment(context.Background(), &models.Appointment{OwnerID: "u1"})
	assert.True(t, domain.IsStoreError(err, domain.StoreWrite))
}

func TestAppointmentSupabase_UpdateAppointmentStatus(t *testing.T) {
	confirmed := func() *models.Appointment {
		return &models.Appointment{ID: "a1", Date: "2025-04-01", Time: "09:00", Status: "confirmed"}
	}

	t.Run("conditional on prior status", func(t *testing.T) {
		client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "eq.a1", r.URL.Query().Get("id"))
			assert.Equal(t, "eq.pending", r.URL.Query().Get("status"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]models.Appointment{*confirmed()})
		})
		repo := NewAppointmentSupabaseRepository(client)

		assert.NoError(t, repo.UpdateAppointmentStatus(context.Background(), confirmed(), domain.StatusPending))
	})

	t.Run("unique violation is slot taken", func(t *testing.T) {
		client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
		})
		repo := NewAppointmentSupabaseRepository(client)

		err := repo.UpdateAppointmentStatus(context.Background(), confirmed(), domain.StatusPending)
		assert.ErrorIs(t, err, domain.ErrSlotTaken)
	})

	t.Run("other failure is write error", func(t *testing.T) {
		client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"XX000","message":"boom"}`))
		})
		repo := NewAppointmentSupabaseRepository(client)

		err := repo.UpdateAppointmentStatus(context.Background(), confirmed(), domain.StatusPending)
		assert.True(t, domain.IsStoreError(err, domain.StoreWrite))
	})

	t.Run("no row and no record is not found", func(t *testing.T) {
		client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		})
		repo := NewAppointmentSupabaseRepository(client)

		err := repo.UpdateAppointmentStatus(context.Background(), confirmed(), domain.StatusPending)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("status moved on is invalid transition", func(t *testing.T) {
		client := newSupabaseTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.Method == http.MethodPatch {
				_, _ = w.Write([]byte("[]"))
				return
			}
			cancelled := confirmed()
			cancelled.Status = "cancelled"
			_ = json.NewEncoder(w).Encode([]models.Appointment{*cancelled})
		})
		repo := NewAppointmentSupabaseRepository(client)

		err := repo.UpdateAppointmentStatus(context.Background(), confirmed(), domain.StatusPending)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}
