package appointment

import (
	"context"
	"time"

	"github.com/SalonLinkApp/salon-scheduler/internal/audit"
	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/metrics"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
	"github.com/SalonLinkApp/salon-scheduler/internal/notify"
)

// TransitionAppointment applies one lifecycle step (confirm, reject,
// complete, cancel) for a salon-owned appointment.
type TransitionAppointment struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewTransitionAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actorID string,
	appointmentID string,
	target domain.Status,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForSalon(ctx, appointmentID, salonID)
	if err != nil {
		return nil, err
	}

	if err := domain.Transition(ap, target, reason, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.IncStatusTransition(string(target))

	switch target {
	case domain.StatusConfirmed:
		uc.dispatchEvent(notify.EventAppointmentConfirmed, ap)
	case domain.StatusRejected:
		uc.dispatchEvent(notify.EventAppointmentRejected, ap)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		ActorID:  actor(actorID),
		Action:   "appointment_" + string(target),
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

func (uc *TransitionAppointment) dispatchEvent(eventType string, ap *models.Appointment) {
	uc.notifier.Dispatch(notify.Event{
		Type:          eventType,
		AppointmentID: ap.ID,
		SalonID:       ap.SalonID,
		ClientID:      ap.ClientID,
		Payload: map[string]any{
			"date":      ap.AppointmentDate,
			"time_slot": ap.TimeSlot,
			"status":    ap.Status,
		},
	})
}
