package handlers

import (
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

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	getSlots *ucappointment.GetAvailableSlots
	create   *ucappointment.CreateAppointment
	get      *ucappointment.GetAppointment
	log      *zap.Logger
}

func NewAppointmentHandler(
	getSlots *ucappointment.GetAvailableSlots,
	create *ucappointment.CreateAppointment,
	get *ucappointment.GetAppointment,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		getSlots: getSlots,
		create:   create,
		get:      get,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// SLOTS
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if !validators.IsDate(date) {
		httperr.BadRequest(c, "invalid_date", "Use a date in the YYYY-MM-DD format.")
		return
	}

	slots, err := h.getSlots.Execute(c.Request.Context(), date)
	if err != nil {
		h.log.Error("list slots failed", zap.String("date", date), zap.Error(err))
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and time are required.")
		return
	}

	if !validators.IsDate(req.Date) || !validators.IsClock(req.Time) {
		httperr.BadRequest(c, "invalid_date_or_time", "Use YYYY-MM-DD and HH:MM.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		middleware.IdentityFrom(c),
		req.Date,
		req.Time,
	)
	if err != nil {
		h.log.Warn("create appointment failed",
			zap.String("date", req.Date),
			zap.String("time", req.Time),
			zap.Error(err),
		)
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(*ap))
}

// ======================================================
// GET ONE
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	ap, err := h.get.Execute(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	if identity.IsAdmin() {
		httpresp.OK(c, dto.AdminFromAppointments([]models.Appointment{*ap})[0])
		return
	}
	httpresp.OK(c, dto.FromAppointment(*ap))
}
