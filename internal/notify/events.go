package notify

// Event names emitted at lifecycle milestones. Delivery (push, history,
// read tracking) belongs to the external notification subsystem; we only
// publish.
const (
	EventAppointmentRequested = "appointment_requested"
	EventAppointmentConfirmed = "appointment_confirmed"
	EventAppointmentRejected  = "appointment_rejected"
)

type Event struct {
	Type          string         `json:"type"`
	AppointmentID string         `json:"appointment_id"`
	SalonID       uint           `json:"salon_id"`
	ClientID      string         `json:"client_id"`
	Payload       map[string]any `json:"payload,omitempty"`
}
