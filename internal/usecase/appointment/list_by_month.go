package appointment

import (
	"context"
	"fmt"

	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
)

// ListByMonth feeds the owner's calendar screen with one month of
// appointments.
type ListByMonth struct {
	repo domain.Repository
}

func NewListByMonth(repo domain.Repository) *ListByMonth {
	return &ListByMonth{repo: repo}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	salonID uint,
	year int,
	month int,
) ([]models.Appointment, error) {

	from := fmt.Sprintf("%04d-%02d-01", year, month)

	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	to := fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)

	return uc.repo.ListForSalonPeriod(ctx, salonID, from, to)
}
