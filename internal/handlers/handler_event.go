package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
)

// eventHandler handles HTTP requests for the booking lifecycle.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

// registerEventRoutes registers the event CRUD and lifecycle routes, plus the
// payment and expense ledger routes nested under each event.
func registerEventRoutes(
	rg *gin.RouterGroup,
	eventService portssvc.EventSvcFacade,
	paymentService portssvc.PaymentSvcFacade,
	expenseService portssvc.ExpenseSvcFacade,
) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
		events.POST("/:id/status", h.changeStatus)
		events.GET("/:id/status-options", h.getStatusOptions)
	}

	registerPaymentRoutes(events, paymentService)
	registerExpenseRoutes(events, expenseService)
}

// createEvent godoc
// @Summary Create a new event
// @Description Registers a booking. New events always start in PROPUESTA.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List events
// @Description Retrieves a filtered, cursor-paginated event listing.
// @Tags events
// @Produce json
// @Param status query string false "Filter by status"
// @Param artistID query string false "Filter by artist"
// @Param promoterID query string false "Filter by promoter"
// @Param fromDate query string false "Earliest event date (YYYY-MM-DD)"
// @Param toDate query string false "Latest event date (YYYY-MM-DD)"
// @Param search query string false "Free text over name, venue and city"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.eventService.ListEvents(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getEvent godoc
// @Summary Get an event by ID
// @Description Retrieves an event with its payment and expense ledgers.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	event, err := h.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		logger.Error("Failed to get event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve event"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary Update an event
// @Description Edits the non-status fields of an event. Status moves only through the status endpoint.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Negotiated total below already collected payments"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrExceedsNegotiatedTotal):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		default:
			logger.Error("Failed to update event", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update event"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete an event
// @Description Removes an event along with its payment and expense ledgers.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		logger.Error("Failed to delete event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete event"})
		return
	}

	c.Status(http.StatusNoContent)
}

// changeStatus godoc
// @Summary Change an event's status
// @Description Moves an event through its lifecycle. Illegal transitions and unmet money guards are rejected.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param transition body dto.ChangeStatusRequest true "Target status"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Transition rejected by lifecycle rules"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/status [post]
func (h *eventHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	toStatus := domain.EventStatus(req.ToStatus)
	if !domain.IsValidStatus(toStatus) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown status: " + req.ToStatus})
		return
	}

	event, err := h.eventService.ChangeStatus(c.Request.Context(), eventID, toStatus, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTransition),
			errors.Is(err, domain.ErrInsufficientAdvance),
			errors.Is(err, domain.ErrIncompletePayment):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		default:
			logger.Error("Failed to change event status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to change event status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// getStatusOptions godoc
// @Summary Get reachable statuses for an event
// @Description Returns the current status and the legal next statuses with their display metadata. Intended as a UI hint; the transition endpoint remains authoritative.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.StatusOptionsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/status-options [get]
func (h *eventHandler) getStatusOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	resp, err := h.eventService.GetStatusOptions(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		logger.Error("Failed to get status options", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get status options"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
