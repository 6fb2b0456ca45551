package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
)

// promoterHandler handles HTTP requests related to promoters.
type promoterHandler struct {
	promoterService portssvc.PromoterSvcFacade
}

func newPromoterHandler(ps portssvc.PromoterSvcFacade) *promoterHandler {
	return &promoterHandler{promoterService: ps}
}

// registerPromoterRoutes registers routes related to the promoter roster.
func registerPromoterRoutes(rg *gin.RouterGroup, promoterService portssvc.PromoterSvcFacade) {
	h := newPromoterHandler(promoterService)

	promoters := rg.Group("/promoters")
	{
		promoters.POST("", h.createPromoter)
		promoters.GET("", h.listPromoters)
		promoters.GET("/:id", h.getPromoter)
		promoters.PUT("/:id", h.updatePromoter)
	}
}

// createPromoter godoc
// @Summary Create a new promoter
// @Tags promoters
// @Accept json
// @Produce json
// @Param promoter body dto.CreatePromoterRequest true "Promoter details"
// @Success 201 {object} dto.PromoterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /promoters [post]
func (h *promoterHandler) createPromoter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePromoterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	promoter, err := h.promoterService.CreatePromoter(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create promoter", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create promoter"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPromoterResponse(promoter))
}

// listPromoters godoc
// @Summary List promoters
// @Tags promoters
// @Produce json
// @Param includeInactive query bool false "Include inactive promoters" default(false)
// @Success 200 {object} dto.ListPromotersResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /promoters [get]
func (h *promoterHandler) listPromoters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive := c.DefaultQuery("includeInactive", "false") == "true"

	promoters, err := h.promoterService.ListPromoters(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list promoters", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list promoters"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPromotersResponse(promoters))
}

// getPromoter godoc
// @Summary Get a promoter by ID
// @Tags promoters
// @Produce json
// @Param id path string true "Promoter ID"
// @Success 200 {object} dto.PromoterResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /promoters/{id} [get]
func (h *promoterHandler) getPromoter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	promoterID := c.Param("id")

	promoter, err := h.promoterService.GetPromoterByID(c.Request.Context(), promoterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Promoter not found"})
			return
		}
		logger.Error("Failed to get promoter", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve promoter"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPromoterResponse(promoter))
}

// updatePromoter godoc
// @Summary Update a promoter
// @Tags promoters
// @Accept json
// @Produce json
// @Param id path string true "Promoter ID"
// @Param promoter body dto.UpdatePromoterRequest true "Fields to update"
// @Success 200 {object} dto.PromoterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /promoters/{id} [put]
func (h *promoterHandler) updatePromoter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	promoterID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePromoterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	promoter, err := h.promoterService.UpdatePromoter(c.Request.Context(), promoterID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Promoter not found"})
		default:
			logger.Error("Failed to update promoter", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update promoter"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPromoterResponse(promoter))
}
