package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/SalonLinkApp/salon-scheduler/internal/audit"
	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
	"github.com/SalonLinkApp/salon-scheduler/internal/metrics"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
	"github.com/SalonLinkApp/salon-scheduler/internal/notify"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	salonID uint,
	req domain.BookingRequest,
) (*models.Appointment, error) {

	if err := domain.ValidateBooking(req); err != nil {
		return nil, err
	}

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	count, err := uc.repo.CountActiveServices(ctx, salonID, req.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if count != int64(len(req.ServiceIDs)) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// Re-check the slot against live occupancy right before the write.
	// The partial unique index on active slots is the real guarantee; this
	// keeps the common conflict off the database.
	available, err := uc.availableSlots(ctx, salon, req.Date)
	if err != nil {
		return nil, err
	}
	if !contains(available, req.TimeSlot) {
		metrics.IncSlotConflict()
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	ap := &models.Appointment{
		ID:      uuid.NewString(),
		SalonID: salonID,

		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,

		ServiceIDs: req.ServiceIDs,

		AppointmentDate: req.Date,
		TimeSlot:        req.TimeSlot,

		TotalPrice:    req.TotalPrice,
		TotalDuration: req.TotalDuration,

		Status: string(domain.InitialStatus()),

		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: "unpaid",
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			metrics.IncSlotConflict()
			return nil, httperr.ErrBusiness("slot_unavailable")
		}
		return nil, err
	}

	metrics.IncAppointmentCreated()

	uc.notifier.Dispatch(notify.Event{
		Type:          notify.EventAppointmentRequested,
		AppointmentID: ap.ID,
		SalonID:       salonID,
		ClientID:      ap.ClientID,
		Payload: map[string]any{
			"date":        ap.AppointmentDate,
			"time_slot":   ap.TimeSlot,
			"client_name": ap.ClientName,
		},
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		ActorID:  actor(ap.ClientID),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) availableSlots(
	ctx context.Context,
	salon *models.Salon,
	date string,
) ([]string, error) {

	year, month, day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	hours, err := uc.repo.GetDayHours(ctx, salon.ID, domain.Weekday(year, month, day))
	if err != nil {
		return nil, err
	}
	if hours == nil {
		return []string{}, nil
	}

	occupied, err := uc.repo.GetBookedSlots(ctx, salon.ID, date)
	if err != nil {
		return nil, err
	}

	return domain.ComputeAvailableSlots(
		domain.DayHours{
			Open:   hours.Open,
			Close:  hours.Close,
			Closed: hours.Closed,
		},
		occupied,
		salon.SlotIntervalMin,
	), nil
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func actor(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
