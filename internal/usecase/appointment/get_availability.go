package appointment

import (
	"context"

	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/metrics"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes the bookable HH:MM slot starts for a salon and date.
// Occupancy is re-read on every call; nothing is cached between requests.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	salonID uint,
	date string,
) ([]string, error) {

	year, month, day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	weekday := domain.Weekday(year, month, day)

	hours, err := uc.repo.GetDayHours(ctx, salonID, weekday)
	if err != nil {
		return nil, err
	}
	if hours == nil {
		return []string{}, nil
	}

	occupied, err := uc.repo.GetBookedSlots(ctx, salonID, date)
	if err != nil {
		return nil, err
	}

	metrics.IncAvailabilityRequest()

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
