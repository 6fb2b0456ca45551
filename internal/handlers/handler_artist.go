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

// artistHandler handles HTTP requests related to artists.
type artistHandler struct {
	artistService portssvc.ArtistSvcFacade
}

func newArtistHandler(as portssvc.ArtistSvcFacade) *artistHandler {
	return &artistHandler{artistService: as}
}

// registerArtistRoutes registers routes related to the artist roster.
func registerArtistRoutes(rg *gin.RouterGroup, artistService portssvc.ArtistSvcFacade) {
	h := newArtistHandler(artistService)

	artists := rg.Group("/artists")
	{
		artists.POST("", h.createArtist)
		artists.GET("", h.listArtists)
		artists.GET("/:id", h.getArtist)
		artists.PUT("/:id", h.updateArtist)
	}
}

// createArtist godoc
// @Summary Create a new artist
// @Tags artists
// @Accept json
// @Produce json
// @Param artist body dto.CreateArtistRequest true "Artist details"
// @Success 201 {object} dto.ArtistResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /artists [post]
func (h *artistHandler) createArtist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	artist, err := h.artistService.CreateArtist(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create artist", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create artist"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtistResponse(artist))
}

// listArtists godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Param includeInactive query bool false "Include inactive artists" default(false)
// @Success 200 {object} dto.ListArtistsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /artists [get]
func (h *artistHandler) listArtists(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeInactive := c.DefaultQuery("includeInactive", "false") == "true"

	artists, err := h.artistService.ListArtists(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list artists", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list artists"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListArtistsResponse(artists))
}

// getArtist godoc
// @Summary Get an artist by ID
// @Tags artists
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} dto.ArtistResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /artists/{id} [get]
func (h *artistHandler) getArtist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	artistID := c.Param("id")

	artist, err := h.artistService.GetArtistByID(c.Request.Context(), artistID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Artist not found"})
			return
		}
		logger.Error("Failed to get artist", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve artist"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArtistResponse(artist))
}

// updateArtist godoc
// @Summary Update an artist
// @Tags artists
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Param artist body dto.UpdateArtistRequest true "Fields to update"
// @Success 200 {object} dto.ArtistResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /artists/{id} [put]
func (h *artistHandler) updateArtist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	artistID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	artist, err := h.artistService.UpdateArtist(c.Request.Context(), artistID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Artist not found"})
		default:
			logger.Error("Failed to update artist", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update artist"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToArtistResponse(artist))
}
