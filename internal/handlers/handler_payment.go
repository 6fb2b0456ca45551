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

// paymentHandler handles HTTP requests for an event's payment ledger.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes nests the payment ledger routes under the events group.
func registerPaymentRoutes(events *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := events.Group("/:id/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
		payments.PUT("/:paymentID", h.updatePayment)
		payments.DELETE("/:paymentID", h.deletePayment)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Registers a payment against an event. The running total may never exceed the negotiated total.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Payment would exceed the negotiated total"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.paymentService.RecordPayment(c.Request.Context(), eventID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrExceedsNegotiatedTotal):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		default:
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(entry))
}

// listPayments godoc
// @Summary List an event's payments
// @Description Returns the payment ledger with its total and the outstanding balance.
// @Tags payments
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	resp, err := h.paymentService.ListPayments(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updatePayment godoc
// @Summary Update a payment
// @Description Edits a payment entry. The ceiling check re-runs against the amended amount.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param paymentID path string true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Amended amount would exceed the negotiated total"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/payments/{paymentID} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	paymentID := c.Param("paymentID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.paymentService.UpdatePayment(c.Request.Context(), eventID, paymentID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrExceedsNegotiatedTotal):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
		default:
			logger.Error("Failed to update payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(entry))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes a payment entry, freeing headroom under the negotiated total.
// @Tags payments
// @Produce json
// @Param id path string true "Event ID"
// @Param paymentID path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/payments/{paymentID} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	paymentID := c.Param("paymentID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), eventID, paymentID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
			return
		}
		logger.Error("Failed to delete payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete payment"})
		return
	}

	c.Status(http.StatusNoContent)
}
