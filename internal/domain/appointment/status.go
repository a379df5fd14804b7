package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the full lifecycle table. Statuses absent as keys are
// terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus validates a caller-supplied status name.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// IsTerminal reports whether a status frees its slot and permits no further
// transitions.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// NonTerminalStatuses are the statuses that still occupy a slot.
func NonTerminalStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ReasonRequired reports whether entering the status demands a non-empty
// reason text.
func ReasonRequired(s Status) bool {
	return s == StatusRejected || s == StatusCancelled
}
