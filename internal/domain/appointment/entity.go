package appointment

import (
	"strings"
	"time"

	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves an appointment to target, stamping the status-specific
// timestamp and storing the supplied reason/notes text. The appointment is
// left untouched when the transition is not permitted.
func Transition(ap *models.Appointment, target Status, reason string, now time.Time) error {
	current := Status(ap.Status)

	if !CanTransition(current, target) {
		return httperr.ErrBusiness("invalid_transition")
	}

	reason = strings.TrimSpace(reason)
	if ReasonRequired(target) && reason == "" {
		return httperr.ErrBusiness("missing_reason")
	}

	switch target {
	case StatusConfirmed:
		ap.SalonNotes = reason
		ap.ConfirmedAt = &now
	case StatusRejected:
		ap.RejectionReason = reason
		ap.RejectedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancellationReason = reason
		ap.CancelledAt = &now
	}

	ap.Status = string(target)
	return nil
}
