package appointment

import (
	"strings"

	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
)

// BookingRequest is the client payload for a new appointment, before any
// persistence is touched.
type BookingRequest struct {
	ClientID    string
	ClientName  string
	ClientPhone string

	ServiceIDs []uint

	Date     string // YYYY-MM-DD
	TimeSlot string // HH:MM

	TotalPrice    float64
	TotalDuration int

	Notes         string
	PaymentMethod string
}

// ValidateBooking checks the payload shape. Slot occupancy and grid
// alignment are checked later against the computed availability.
func ValidateBooking(req BookingRequest) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return httperr.ErrBusiness("missing_client_name")
	}
	if strings.TrimSpace(req.ClientPhone) == "" {
		return httperr.ErrBusiness("missing_client_phone")
	}
	if len(req.ServiceIDs) == 0 {
		return httperr.ErrBusiness("missing_services")
	}
	if _, _, _, err := ParseDate(req.Date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if _, err := ParseClock(req.TimeSlot); err != nil {
		return httperr.ErrBusiness("invalid_time_slot")
	}
	if req.TotalDuration <= 0 {
		return httperr.ErrBusiness("invalid_duration")
	}
	if req.TotalPrice < 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	return nil
}
