package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/showroom-scheduler/internal/dto"
	"github.com/BruksfildServices01/showroom-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/showroom-scheduler/internal/middleware"
	ucappointment "github.com/BruksfildServices01/showroom-scheduler/internal/usecase/appointment"
)

type MeHandler struct {
	listMine *ucappointment.ListUserAppointments
}

func NewMeHandler(listMine *ucappointment.ListUserAppointments) *MeHandler {
	return &MeHandler{listMine: listMine}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	httpresp.OK(c, gin.H{
		"user": gin.H{
			"id":    identity.UserID,
			"email": identity.Email,
			"role":  identity.Role,
		},
	})
}

// Appointments is the caller's booking history, oldest date first.
func (h *MeHandler) Appointments(c *gin.Context) {
	aps, err := h.listMine.Execute(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}
