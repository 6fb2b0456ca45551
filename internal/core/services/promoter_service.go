package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
)

// promoterService provides promoter roster operations.
type promoterService struct {
	BaseService
	promoterRepo portsrepo.PromoterRepositoryFacade
}

// NewPromoterService creates a new PromoterService.
func NewPromoterService(promoterRepo portsrepo.PromoterRepositoryFacade) portssvc.PromoterSvcFacade {
	return &promoterService{promoterRepo: promoterRepo}
}

var _ portssvc.PromoterSvcFacade = (*promoterService)(nil)

func (s *promoterService) CreatePromoter(ctx context.Context, req dto.CreatePromoterRequest, creatorUserID string) (*domain.Promoter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	promoter := domain.Promoter{
		PromoterID:   uuid.NewString(),
		Name:         req.Name,
		Company:      req.Company,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		City:         req.City,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.promoterRepo.SavePromoter(ctx, promoter); err != nil {
		logger.Error("Failed to save promoter", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save promoter: %w", err)
	}

	logger.Info("Promoter created", slog.String("promoter_id", promoter.PromoterID))
	return &promoter, nil
}

func (s *promoterService) GetPromoterByID(ctx context.Context, promoterID string) (*domain.Promoter, error) {
	promoter, err := s.promoterRepo.FindPromoterByID(ctx, promoterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("promoter %s not found", promoterID))
		}
		return nil, fmt.Errorf("failed to find promoter %s: %w", promoterID, err)
	}
	return promoter, nil
}

func (s *promoterService) ListPromoters(ctx context.Context, includeInactive bool) ([]domain.Promoter, error) {
	promoters, err := s.promoterRepo.ListPromoters(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list promoters: %w", err)
	}
	return promoters, nil
}

func (s *promoterService) UpdatePromoter(ctx context.Context, promoterID string, req dto.UpdatePromoterRequest, requestingUserID string) (*domain.Promoter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	promoter, err := s.GetPromoterByID(ctx, promoterID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		promoter.Name = *req.Name
	}
	if req.Company != nil {
		promoter.Company = *req.Company
	}
	if req.ContactEmail != nil {
		promoter.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		promoter.ContactPhone = *req.ContactPhone
	}
	if req.City != nil {
		promoter.City = *req.City
	}
	if req.IsActive != nil {
		promoter.IsActive = *req.IsActive
	}

	promoter.LastUpdatedAt = time.Now().UTC()
	promoter.LastUpdatedBy = requestingUserID

	if err := s.promoterRepo.UpdatePromoter(ctx, *promoter); err != nil {
		logger.Error("Failed to update promoter", slog.String("promoter_id", promoterID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update promoter %s: %w", promoterID, err)
	}

	logger.Info("Promoter updated", slog.String("promoter_id", promoterID))
	return promoter, nil
}
