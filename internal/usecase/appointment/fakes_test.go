package appointment

import (
	"context"
	"sort"
	"sync"

	"github.com/SalonLinkApp/salon-scheduler/internal/audit"
	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
	"github.com/SalonLinkApp/salon-scheduler/internal/notify"
)

// fakeRepo is an in-memory domain.Repository for usecase tests.
type fakeRepo struct {
	mu sync.Mutex

	salons         map[uint]*models.Salon
	hours          map[uint]map[int]*models.OperatingHours
	activeServices map[uint]map[uint]bool
	appointments   map[string]*models.Appointment

	createErr      error
	bookedSlotsErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons:         map[uint]*models.Salon{},
		hours:          map[uint]map[int]*models.OperatingHours{},
		activeServices: map[uint]map[uint]bool{},
		appointments:   map[string]*models.Appointment{},
	}
}

func (f *fakeRepo) addSalon(id uint, interval int) {
	f.salons[id] = &models.Salon{ID: id, Name: "Studio Bella", SlotIntervalMin: interval}
}

func (f *fakeRepo) addHours(salonID uint, weekday int, open, closeAt string, closed bool) {
	if f.hours[salonID] == nil {
		f.hours[salonID] = map[int]*models.OperatingHours{}
	}
	f.hours[salonID][weekday] = &models.OperatingHours{
		SalonID: salonID,
		Weekday: weekday,
		Open:    open,
		Close:   closeAt,
		Closed:  closed,
	}
}

func (f *fakeRepo) addServices(salonID uint, ids ...uint) {
	if f.activeServices[salonID] == nil {
		f.activeServices[salonID] = map[uint]bool{}
	}
	for _, id := range ids {
		f.activeServices[salonID][id] = true
	}
}

func (f *fakeRepo) seedAppointment(ap *models.Appointment) {
	cp := *ap
	f.appointments[ap.ID] = &cp
}

func (f *fakeRepo) get(id string) *models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appointments[id]
}

func (f *fakeRepo) GetSalonByID(ctx context.Context, id uint) (*models.Salon, error) {
	if s, ok := f.salons[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrBusiness("salon_not_found")
}

func (f *fakeRepo) GetDayHours(ctx context.Context, salonID uint, weekday int) (*models.OperatingHours, error) {
	if h, ok := f.hours[salonID][weekday]; ok {
		return h, nil
	}
	return nil, nil
}

func (f *fakeRepo) CountActiveServices(ctx context.Context, salonID uint, ids []uint) (int64, error) {
	var count int64
	for _, id := range ids {
		if f.activeServices[salonID][id] {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetBookedSlots(ctx context.Context, salonID uint, date string) ([]string, error) {
	if f.bookedSlotsErr != nil {
		return nil, f.bookedSlotsErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var slots []string
	for _, ap := range f.appointments {
		if ap.SalonID != salonID || ap.AppointmentDate != date {
			continue
		}
		if domain.IsTerminal(domain.Status(ap.Status)) {
			continue
		}
		slots = append(slots, ap.TimeSlot)
	}
	sort.Strings(slots)
	return slots, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetAppointmentForSalon(ctx context.Context, appointmentID string, salonID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[appointmentID]
	if !ok || ap.SalonID != salonID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) ListForSalon(ctx context.Context, salonID uint, status string, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID != salonID {
			continue
		}
		if status != "" && ap.Status != status {
			continue
		}
		if date != "" && ap.AppointmentDate != date {
			continue
		}
		out = append(out, *ap)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate != out[j].AppointmentDate {
			return out[i].AppointmentDate < out[j].AppointmentDate
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out, nil
}

func (f *fakeRepo) ListForSalonPeriod(ctx context.Context, salonID uint, fromDate, toDate string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID != salonID {
			continue
		}
		if ap.AppointmentDate < fromDate || ap.AppointmentDate >= toDate {
			continue
		}
		out = append(out, *ap)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate != out[j].AppointmentDate {
			return out[i].AppointmentDate < out[j].AppointmentDate
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out, nil
}

func (f *fakeRepo) ListForClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate != out[j].AppointmentDate {
			return out[i].AppointmentDate > out[j].AppointmentDate
		}
		return out[i].TimeSlot > out[j].TimeSlot
	})
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// capturePublisher records published notification events.
type capturePublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *capturePublisher) Publish(ctx context.Context, ev notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *capturePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

// memSink records audit events.
type memSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *memSink) Write(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *memSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

func newTestDispatchers() (*notify.Dispatcher, *capturePublisher, *audit.Dispatcher, *memSink) {
	publisher := &capturePublisher{}
	sink := &memSink{}
	return notify.NewDispatcher(publisher), publisher, audit.NewDispatcher(sink), sink
}
