package appointment

import (
	"context"

	"github.com/SalonLinkApp/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// GetDayHours returns (nil, nil) when the weekday was never configured.
	GetDayHours(
		ctx context.Context,
		salonID uint,
		weekday int,
	) (*models.OperatingHours, error)

	// -------- Services --------
	CountActiveServices(
		ctx context.Context,
		salonID uint,
		ids []uint,
	) (int64, error)

	// -------- Occupancy --------
	// GetBookedSlots returns the HH:MM starts held by non-terminal
	// appointments on the given date.
	GetBookedSlots(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]string, error)

	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForSalon(
		ctx context.Context,
		appointmentID string,
		salonID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Projections --------
	ListForSalon(
		ctx context.Context,
		salonID uint,
		status string,
		date string,
	) ([]models.Appointment, error)

	ListForSalonPeriod(
		ctx context.Context,
		salonID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)

	ListForClient(
		ctx context.Context,
		clientID string,
	) ([]models.Appointment, error)
}
