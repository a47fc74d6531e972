package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/httperr"
)

var businessStatus = map[string]int{
	"unauthenticated":       http.StatusUnauthorized,
	"forbidden":             http.StatusForbidden,
	"appointment_not_found": http.StatusNotFound,
	"invalid_state":         http.StatusConflict,
	"slot_taken":            http.StatusConflict,
}

var businessMessage = map[string]string{
	"unauthenticated":       "Sign in to continue.",
	"forbidden":             "You are not allowed to do this.",
	"appointment_not_found": "Appointment not found.",
	"invalid_state":         "The appointment cannot move to that status.",
	"slot_taken":            "This time slot is no longer available.",
}

// writeError maps use case failures onto the JSON error contract.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		if status, known := businessStatus[code]; known {
			httperr.Write(c, status, code, businessMessage[code])
			return
		}
		httperr.BadRequest(c, code, code)
		return
	}

	switch {
	case domain.IsStoreError(err, domain.StoreRead):
		httperr.Unavailable(c, "store_read_failed", "Could not load data, try again.")
	case domain.IsStoreError(err, domain.StoreWrite):
		httperr.Internal(c, "store_write_failed", "Could not save data, try again.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
