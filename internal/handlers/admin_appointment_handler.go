package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/showroom-scheduler/internal/dto"
	"github.com/BruksfildServices01/showroom-scheduler/internal/httperr"
	"github.com/BruksfildServices01/showroom-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/showroom-scheduler/internal/middleware"
	"github.com/BruksfildServices01/showroom-scheduler/internal/models"
	ucappointment "github.com/BruksfildServices01/showroom-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/validators"
)

type NotificationLogReader interface {
	ListNotificationLogs(ctx context.Context, appointmentID string) ([]models.NotificationLog, error)
}

// ======================================================
// HANDLER
// ======================================================

type AdminAppointmentHandler struct {
	listByDate    *ucappointment.ListAppointmentsByDate
	get           *ucappointment.GetAppointment
	changeStatus  *ucappointment.ChangeStatus
	notifications NotificationLogReader
	log           *zap.Logger
}

func NewAdminAppointmentHandler(
	listByDate *ucappointment.ListAppointmentsByDate,
	get *ucappointment.GetAppointment,
	changeStatus *ucappointment.ChangeStatus,
	notifications NotificationLogReader,
	log *zap.Logger,
) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		listByDate:    listByDate,
		get:           get,
		changeStatus:  changeStatus,
		notifications: notifications,
		log:           log,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AdminAppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if !validators.IsDate(date) {
		httperr.BadRequest(c, "invalid_date", "Use a date in the YYYY-MM-DD format.")
		return
	}

	aps, err := h.listByDate.Execute(c.Request.Context(), date)
	if err != nil {
		h.log.Error("list appointments by date failed", zap.String("date", date), zap.Error(err))
		writeError(c, err)
		return
	}

	httpresp.List(c, dto.AdminFromAppointments(aps))
}

// ======================================================
// CHANGE STATUS
// ======================================================

func (h *AdminAppointmentHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	id := c.Param("id")
	ap, err := h.changeStatus.Execute(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		id,
		req.Status,
	)
	if err != nil {
		h.log.Warn("change status failed",
			zap.String("appointment_id", id),
			zap.String("status", req.Status),
			zap.Error(err),
		)
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.AdminFromAppointments([]models.Appointment{*ap})[0])
}

// ======================================================
// NOTIFICATION HISTORY
// ======================================================

func (h *AdminAppointmentHandler) Notifications(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.get.Execute(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		h.log.Warn("notification history lookup failed", zap.String("appointment_id", id), zap.Error(err))
		writeError(c, err)
		return
	}

	logs, err := h.notifications.ListNotificationLogs(c.Request.Context(), id)
	if err != nil {
		h.log.Error("list notification logs failed", zap.Error(err))
		httperr.Unavailable(c, "notification_logs_failed", "Could not load notification history.")
		return
	}

	httpresp.List(c, logs)
}
