package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
)

const (
	testDate  = "2026-09-07"
	testSalon = uint(1)
)

func testWeekday() int {
	return domain.Weekday(2026, 9, 7)
}

func bookingReq() domain.BookingRequest {
	return domain.BookingRequest{
		ClientID:      "client-1",
		ClientName:    "Ana Souza",
		ClientPhone:   "+5511999990000",
		ServiceIDs:    []uint{1, 2},
		Date:          testDate,
		TimeSlot:      "09:30",
		TotalPrice:    120,
		TotalDuration: 60,
		Notes:         "first visit",
		PaymentMethod: "pix",
	}
}

func setupCreate(t *testing.T) (*fakeRepo, *CreateAppointment, *capturePublisher, *memSink) {
	t.Helper()

	repo := newFakeRepo()
	repo.addSalon(testSalon, 30)
	repo.addHours(testSalon, testWeekday(), "09:00", "18:00", false)
	repo.addServices(testSalon, 1, 2, 3)

	notifier, publisher, auditDispatcher, sink := newTestDispatchers()
	return repo, NewCreateAppointment(repo, notifier, auditDispatcher), publisher, sink
}

func TestCreateAppointment(t *testing.T) {
	repo, uc, publisher, sink := setupCreate(t)

	ap, err := uc.Execute(context.Background(), testSalon, bookingReq())
	require.NoError(t, err)

	_, parseErr := uuid.Parse(ap.ID)
	require.NoError(t, parseErr)

	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, testDate, ap.AppointmentDate)
	assert.Equal(t, "09:30", ap.TimeSlot)
	assert.Equal(t, "unpaid", ap.PaymentStatus)
	assert.Equal(t, []uint{1, 2}, ap.ServiceIDs)

	stored := repo.get(ap.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "Ana Souza", stored.ClientName)

	require.Eventually(t, func() bool {
		return len(publisher.types()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"appointment_requested"}, publisher.types())

	require.Eventually(t, func() bool {
		return len(sink.actions()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"appointment_created"}, sink.actions())
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	repo, uc, _, _ := setupCreate(t)
	repo.seedAppointment(&models.Appointment{
		ID:              "existing",
		SalonID:         testSalon,
		AppointmentDate: testDate,
		TimeSlot:        "09:30",
		Status:          "pending",
	})

	_, err := uc.Execute(context.Background(), testSalon, bookingReq())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateAppointmentTerminalBookingFreesSlot(t *testing.T) {
	repo, uc, _, _ := setupCreate(t)
	repo.seedAppointment(&models.Appointment{
		ID:              "cancelled-one",
		SalonID:         testSalon,
		AppointmentDate: testDate,
		TimeSlot:        "09:30",
		Status:          "cancelled",
	})

	ap, err := uc.Execute(context.Background(), testSalon, bookingReq())
	require.NoError(t, err)
	assert.Equal(t, "pending", ap.Status)
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	_, uc, _, _ := setupCreate(t)

	req := bookingReq()
	req.ServiceIDs = []uint{1, 99}

	_, err := uc.Execute(context.Background(), testSalon, req)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointmentClosedDay(t *testing.T) {
	repo, uc, _, _ := setupCreate(t)
	repo.addHours(testSalon, testWeekday(), "09:00", "18:00", true)

	_, err := uc.Execute(context.Background(), testSalon, bookingReq())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateAppointmentUnconfiguredWeekday(t *testing.T) {
	repo := newFakeRepo()
	repo.addSalon(testSalon, 30)
	repo.addServices(testSalon, 1, 2)

	notifier, _, auditDispatcher, _ := newTestDispatchers()
	uc := NewCreateAppointment(repo, notifier, auditDispatcher)

	_, err := uc.Execute(context.Background(), testSalon, bookingReq())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateAppointmentSalonNotFound(t *testing.T) {
	_, uc, _, _ := setupCreate(t)

	_, err := uc.Execute(context.Background(), 42, bookingReq())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "salon_not_found"))
}

func TestCreateAppointmentInvalidRequest(t *testing.T) {
	repo, uc, _, _ := setupCreate(t)

	req := bookingReq()
	req.Date = "07/09/2026"

	_, err := uc.Execute(context.Background(), testSalon, req)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	assert.Empty(t, repo.appointments)
}

func TestCreateAppointmentUniqueViolationMapsToSlotUnavailable(t *testing.T) {
	repo, uc, _, _ := setupCreate(t)
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_active_slot"}

	_, err := uc.Execute(context.Background(), testSalon, bookingReq())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateAppointmentStorageErrorPropagates(t *testing.T) {
	repo, uc, _, _ := setupCreate(t)
	boom := errors.New("connection reset")
	repo.bookedSlotsErr = boom

	_, err := uc.Execute(context.Background(), testSalon, bookingReq())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, httperr.BusinessCode(err))
}
