package repositories

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
)

// PromoterRepositoryFacade defines persistence operations for promoters.
type PromoterRepositoryFacade interface {
	SavePromoter(ctx context.Context, promoter domain.Promoter) error
	FindPromoterByID(ctx context.Context, promoterID string) (*domain.Promoter, error)
	ListPromoters(ctx context.Context, includeInactive bool) ([]domain.Promoter, error)
	UpdatePromoter(ctx context.Context, promoter domain.Promoter) error
}
