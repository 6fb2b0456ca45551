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

// expenseHandler handles HTTP requests for an event's expense ledger.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes nests the expense ledger routes under the events group.
func registerExpenseRoutes(events *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := events.Group("/:id/expenses")
	{
		expenses.POST("", h.recordExpense)
		expenses.GET("", h.listExpenses)
		expenses.PUT("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// recordExpense godoc
// @Summary Record an expense
// @Description Registers a cost line item against an event. Expenses carry no ceiling.
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/expenses [post]
func (h *expenseHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.expenseService.RecordExpense(c.Request.Context(), eventID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		default:
			logger.Error("Failed to record expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(entry))
}

// listExpenses godoc
// @Summary List an event's expenses
// @Tags expenses
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	resp, err := h.expenseService.ListExpenses(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
			return
		}
		logger.Error("Failed to list expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param expenseID path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/expenses/{expenseID} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	expenseID := c.Param("expenseID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.expenseService.UpdateExpense(c.Request.Context(), eventID, expenseID, req, requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expense not found"})
		default:
			logger.Error("Failed to update expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(entry))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Event ID"
// @Param expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	expenseID := c.Param("expenseID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), eventID, expenseID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Expense not found"})
			return
		}
		logger.Error("Failed to delete expense", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete expense"})
		return
	}

	c.Status(http.StatusNoContent)
}
