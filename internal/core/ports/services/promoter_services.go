package services

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/dto"
)

// PromoterSvcFacade defines operations for managing promoters.
type PromoterSvcFacade interface {
	CreatePromoter(ctx context.Context, req dto.CreatePromoterRequest, creatorUserID string) (*domain.Promoter, error)
	GetPromoterByID(ctx context.Context, promoterID string) (*domain.Promoter, error)
	ListPromoters(ctx context.Context, includeInactive bool) ([]domain.Promoter, error)
	UpdatePromoter(ctx context.Context, promoterID string, req dto.UpdatePromoterRequest, requestingUserID string) (*domain.Promoter, error)
}
