package appointment

import (
	"context"

	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
)

type ListForClient struct {
	repo domain.Repository
}

func NewListForClient(repo domain.Repository) *ListForClient {
	return &ListForClient{repo: repo}
}

// Execute returns the client's booking history, most recent first.
func (uc *ListForClient) Execute(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {
	return uc.repo.ListForClient(ctx, clientID)
}
