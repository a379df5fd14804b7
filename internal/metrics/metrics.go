package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	appointmentCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "appointment_created_total",
			Help:      "Count of appointments created.",
		},
	)

	slotConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "slot_conflict_total",
			Help:      "Count of bookings refused because the slot was taken.",
		},
	)

	statusTransition = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "status_transition_total",
			Help:      "Count of appointment status transitions by target status.",
		},
		[]string{"to"},
	)

	availabilityRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_scheduler",
			Name:      "availability_requests_total",
			Help:      "Count of availability computations served.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			appointmentCreated,
			slotConflict,
			statusTransition,
			availabilityRequests,
		)
	})
}

func IncAppointmentCreated() {
	appointmentCreated.Inc()
}

func IncSlotConflict() {
	slotConflict.Inc()
}

func IncStatusTransition(to string) {
	statusTransition.WithLabelValues(to).Inc()
}

func IncAvailabilityRequest() {
	availabilityRequests.Inc()
}
