package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("salon_not_found")
		}
		return nil, err
	}
	return &salon, nil
}

func (r *AppointmentGormRepository) GetDayHours(
	ctx context.Context,
	salonID uint,
	weekday int,
) (*models.OperatingHours, error) {

	var hours models.OperatingHours
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ?", salonID, weekday).
		First(&hours).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// weekday never configured: treated as closed, not an error
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &hours, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *AppointmentGormRepository) CountActiveServices(
	ctx context.Context,
	salonID uint,
	ids []uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("salon_id = ? AND active = true AND id IN ?", salonID, ids).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Occupancy
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBookedSlots(
	ctx context.Context,
	salonID uint,
	date string,
) ([]string, error) {

	var slots []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"salon_id = ? AND appointment_date = ? AND status IN ?",
			salonID, date, nonTerminal(),
		).
		Order("time_slot ASC").
		Pluck("time_slot", &slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Appointment (create / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointmentForSalon(
	ctx context.Context,
	appointmentID string,
	salonID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Projections
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForSalon(
	ctx context.Context,
	salonID uint,
	status string,
	date string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID)

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if date != "" {
		q = q.Where("appointment_date = ?", date)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date ASC, time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListForSalonPeriod(
	ctx context.Context,
	salonID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND appointment_date >= ? AND appointment_date < ?",
			salonID, fromDate, toDate,
		).
		Order("appointment_date ASC, time_slot ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("appointment_date DESC, time_slot DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func nonTerminal() []string {
	statuses := domain.NonTerminalStatuses()
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
