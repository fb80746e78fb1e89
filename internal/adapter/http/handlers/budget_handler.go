package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "comercial_moveis/internal/adapter/http/dto/response"
	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/format"
	"comercial_moveis/internal/usecase"
	"comercial_moveis/pkg"
)

// BudgetHandler handles quote (orçamento) requests.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
	locale  format.Locale
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, l format.Locale) *BudgetHandler {
	return &BudgetHandler{usecase: uc, locale: l}
}

// GenerateQuote godoc
// @Summary      Generate a quote from a simulation
// @Tags         budgets
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      201  {object}  response.BudgetResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /simulations/{session_id}/quote [post]
func (h *BudgetHandler) GenerateQuote(c *gin.Context) {
	sessionID := c.Param("session_id")
	b, err := h.usecase.GenerateQuote(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[budget][handler] quote failed session_id=%s err=%v", sessionID, err)
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b, h.locale))
}

// GetBudget godoc
// @Summary      Get a quote
// @Tags         budgets
// @Produce      json
// @Param        budget_id  path  string  true  "Budget ID"
// @Success      200  {object}  response.BudgetResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /budgets/{budget_id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b, h.locale))
}

// ListByClient godoc
// @Summary      List the quotes of a client
// @Tags         budgets
// @Produce      json
// @Param        client_id  path  string  true  "Client ID"
// @Success      200  {array}  response.BudgetResponse
// @Router       /clients/{client_id}/budgets [get]
func (h *BudgetHandler) ListByClient(c *gin.Context) {
	list, err := h.usecase.ListByClientID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(list, h.locale))
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Approve)
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Reject)
}

func (h *BudgetHandler) CancelBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Cancel)
}

func (h *BudgetHandler) patchBudgetStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Budget, error),
) {
	b, err := updater(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b, h.locale))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotAllowed):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ALLOWED", "A client and at least one environment are required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetStatusTransition):
		return pkg.NewDomainErrorSimple("BUDGET_STATUS_CONFLICT", "Budget status does not allow this operation", http.StatusConflict)
	default:
		return mapSimulationError(err)
	}
}
