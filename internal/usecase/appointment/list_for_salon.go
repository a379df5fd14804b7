package appointment

import (
	"context"

	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/dto"
	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
)

type ListForSalon struct {
	repo domain.Repository
}

func NewListForSalon(repo domain.Repository) *ListForSalon {
	return &ListForSalon{repo: repo}
}

// Execute returns the salon's operational queue, oldest date first so
// pending requests are triaged in order. status and date filters are
// optional.
func (uc *ListForSalon) Execute(
	ctx context.Context,
	salonID uint,
	status string,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if status != "" {
		if _, ok := domain.ParseStatus(status); !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}
	if date != "" {
		if _, _, _, err := domain.ParseDate(date); err != nil {
			return nil, err
		}
	}

	appointments, err := uc.repo.ListForSalon(ctx, salonID, status, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			Date:          ap.AppointmentDate,
			TimeSlot:      ap.TimeSlot,
			Status:        ap.Status,
			ClientName:    ap.ClientName,
			ClientPhone:   ap.ClientPhone,
			ServiceIDs:    ap.ServiceIDs,
			TotalPrice:    ap.TotalPrice,
			TotalDuration: ap.TotalDuration,
			Notes:         ap.Notes,
		})
	}

	return out, nil
}
