package routes

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/showroom-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/showroom-scheduler/internal/db"
	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/showroom-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
)

// Stores groups the persistence ports for the configured driver. Users and
// AuditLogs are nil when the driver has no local identity provider.
type Stores struct {
	Appointments     domain.Repository
	Users            infraRepo.UserRepository
	AuditLogs        handlers.AuditLogReader
	NotificationLogs handlers.NotificationLogReader
	Logs             LogWriter

	close func() error
}

type LogWriter interface {
	InsertAuditLog(ctx context.Context, l *models.AuditLog) error
	InsertNotificationLog(ctx context.Context, l *models.NotificationLog) error
}

func NewStores(cfg *config.Config, log *zap.Logger) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		mem := infraRepo.NewMemoryRepository()
		log.Warn("using in-memory store; data is lost on restart")
		return &Stores{
			Appointments:     mem,
			Users:            mem,
			AuditLogs:        mem,
			NotificationLogs: mem,
			Logs:             mem,
			close:            func() error { return nil },
		}, nil

	case config.StoreDriverSupabase:
		client, err := dbpkg.NewSupabaseClient(cfg)
		if err != nil {
			return nil, err
		}
		logs := infraRepo.NewLogSupabaseRepository(client)
		return &Stores{
			Appointments:     infraRepo.NewAppointmentSupabaseRepository(client),
			NotificationLogs: logs,
			Logs:             logs,
			close:            func() error { return nil },
		}, nil

	default:
		db, err := dbpkg.NewDB(cfg, log)
		if err != nil {
			return nil, err
		}
		logs := infraRepo.NewLogGormRepository(db)
		return &Stores{
			Appointments:     infraRepo.NewAppointmentGormRepository(db),
			Users:            infraRepo.NewUserGormRepository(db),
			AuditLogs:        logs,
			NotificationLogs: logs,
			Logs:             logs,
			close:            func() error { return dbpkg.Close(db) },
		}, nil
	}
}

func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
