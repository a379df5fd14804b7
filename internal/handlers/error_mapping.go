package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
)

// mapBusinessError translates business error codes to HTTP responses.
// Anything without a code is a storage/infra failure and surfaces as 500.
func mapBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch code {
	case "salon_not_found":
		httperr.NotFound(c, code, "Salon not found.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Appointment not found.")
	case "slot_unavailable":
		httperr.Conflict(c, code, "This time slot is no longer available.")
	case "invalid_transition":
		httperr.BadRequest(c, code, "The appointment status does not allow this action.")
	case "missing_reason":
		httperr.BadRequest(c, code, "A reason is required for this action.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Invalid date.")
	case "invalid_time_slot":
		httperr.BadRequest(c, code, "Invalid time slot.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Unknown status filter.")
	case "missing_services", "service_not_found":
		httperr.BadRequest(c, code, "One or more services are invalid.")
	case "invalid_duration", "invalid_price":
		httperr.BadRequest(c, code, "Invalid booking totals.")
	case "missing_client_name", "missing_client_phone":
		httperr.BadRequest(c, code, "Client name and phone are required.")
	default:
		log.Error().Err(err).Msg("unhandled error in handler")
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
