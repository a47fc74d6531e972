package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/showroom-scheduler/internal/audit"
	"github.com/BruksfildServices01/showroom-scheduler/internal/config"
	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/handlers"
	"github.com/BruksfildServices01/showroom-scheduler/internal/middleware"
	"github.com/BruksfildServices01/showroom-scheduler/internal/notification"
	ucAppointment "github.com/BruksfildServices01/showroom-scheduler/internal/usecase/appointment"
)

type Deps struct {
	Stores      *Stores
	Channel     notification.Channel
	RateCounter middleware.Counter
}

// RegisterRoutes wires use cases and handlers onto r. The returned func
// drains the background dispatchers and must run after the server stops.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, log *zap.Logger, deps Deps) func() {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := deps.Stores.Appointments

	auditDispatcher := audit.NewDispatcher(audit.New(deps.Stores.Logs), log, cfg.Notify.QueueSize)
	notifier := notification.NewDispatcher(
		appointmentRepo,
		deps.Stores.Logs,
		deps.Channel,
		log,
		cfg.Notify.QueueSize,
	)

	// ======================================================
	// USE CASES
	// ======================================================
	getSlotsUC := ucAppointment.NewGetAvailableSlots(appointmentRepo, cfg.Slots)
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.BookingRejectConfirmed,
	)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listMineUC := ucAppointment.NewListUserAppointments(appointmentRepo)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	changeStatusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		auditDispatcher,
		notifier,
		cfg.StoreTimezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(getSlotsUC, createAppointmentUC, getAppointmentUC, log)
	meHandler := handlers.NewMeHandler(listMineUC)
	adminHandler := handlers.NewAdminAppointmentHandler(listByDateUC, getAppointmentUC, changeStatusUC, deps.Stores.NotificationLogs, log)

	auth := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	bookingLimit := middleware.RateLimit(deps.RateCounter, "booking", cfg.BookingRateLimit, time.Minute, log)

	api := r.Group("/api")

	// ======================================================
	// AUTH (local identity provider only)
	// ======================================================
	if deps.Stores.Users != nil {
		authHandler := handlers.NewAuthHandler(deps.Stores.Users, cfg, log)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
	}

	// ======================================================
	// APPOINTMENTS
	// ======================================================
	api.GET("/appointments/slots", appointmentHandler.Slots)
	api.POST("/appointments", auth, bookingLimit, appointmentHandler.Create)
	api.GET("/appointments/:id", auth, appointmentHandler.Get)

	me := api.Group("/me", auth)
	me.GET("", meHandler.GetMe)
	me.GET("/appointments", meHandler.Appointments)

	// ======================================================
	// ADMIN
	// ======================================================
	admin := api.Group("/admin", auth, adminOnly)
	admin.GET("/appointments", adminHandler.ListByDate)
	admin.PATCH("/appointments/:id/status", adminHandler.ChangeStatus)
	admin.GET("/appointments/:id/notifications", adminHandler.Notifications)

	if deps.Stores.AuditLogs != nil {
		auditLogsHandler := handlers.NewAuditLogsHandler(deps.Stores.AuditLogs, log)
		admin.GET("/audit-logs", auditLogsHandler.List)
	}

	return func() {
		auditDispatcher.Close()
		notifier.Close()
	}
}
