package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "comercial_moveis/internal/adapter/http/dto/request"
	response "comercial_moveis/internal/adapter/http/dto/response"
	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/format"
	"comercial_moveis/internal/usecase"
	"comercial_moveis/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// SimulationHandler exposes the budget simulation session: open it, replace its
// inputs one at a time and read the recomputed summary.
type SimulationHandler struct {
	usecase usecase.ISimulationUseCase
	locale  format.Locale
}

func NewSimulationHandler(uc usecase.ISimulationUseCase, l format.Locale) *SimulationHandler {
	return &SimulationHandler{usecase: uc, locale: l}
}

// Start godoc
// @Summary      Open a simulation session
// @Tags         simulations
// @Produce      json
// @Success      201  {object}  response.SummaryResponse
// @Router       /simulations [post]
func (h *SimulationHandler) Start(c *gin.Context) {
	id, summary, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		appErr := mapSimulationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respond(c, http.StatusCreated, id, summary)
}

// Get godoc
// @Summary      Current simulation summary
// @Tags         simulations
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SummaryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /simulations/{session_id} [get]
func (h *SimulationHandler) Get(c *gin.Context) {
	sessionID := c.Param("session_id")
	summary, err := h.usecase.Summary(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapSimulationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respond(c, http.StatusOK, sessionID, summary)
}

// End godoc
// @Summary      Close a simulation session
// @Tags         simulations
// @Param        session_id  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /simulations/{session_id} [delete]
func (h *SimulationHandler) End(c *gin.Context) {
	if err := h.usecase.End(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapSimulationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SetClient godoc
// @Summary      Select the client
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                 true  "Session ID"
// @Param        body        body  request.ClientRequest  true  "Client"
// @Success      200  {object}  response.SummaryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /simulations/{session_id}/client [put]
func (h *SimulationHandler) SetClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	sessionID := c.Param("session_id")
	summary, err := h.usecase.SetClient(c.Request.Context(), sessionID, payload.ToEntity())
	h.respondEdit(c, sessionID, summary, err)
}

// SetEnvironments godoc
// @Summary      Replace the environments (ambientes)
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                       true  "Session ID"
// @Param        body        body  request.EnvironmentsRequest  true  "Environments"
// @Success      200  {object}  response.SummaryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /simulations/{session_id}/environments [put]
func (h *SimulationHandler) SetEnvironments(c *gin.Context) {
	var payload request.EnvironmentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	sessionID := c.Param("session_id")
	summary, err := h.usecase.SetEnvironments(c.Request.Context(), sessionID, payload.ToEntities())
	h.respondEdit(c, sessionID, summary, err)
}

// SetPaymentMethods godoc
// @Summary      Replace the payment plan
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                         true  "Session ID"
// @Param        body        body  request.PaymentMethodsRequest  true  "Payment methods"
// @Success      200  {object}  response.SummaryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /simulations/{session_id}/payment-methods [put]
func (h *SimulationHandler) SetPaymentMethods(c *gin.Context) {
	var payload request.PaymentMethodsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	sessionID := c.Param("session_id")
	summary, err := h.usecase.SetPaymentMethods(c.Request.Context(), sessionID, payload.ToEntities(h.locale))
	h.respondEdit(c, sessionID, summary, err)
}

// SetDiscount godoc
// @Summary      Set the discount percentage
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                   true  "Session ID"
// @Param        body        body  request.DiscountRequest  true  "Discount"
// @Success      200  {object}  response.SummaryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /simulations/{session_id}/discount [put]
func (h *SimulationHandler) SetDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	sessionID := c.Param("session_id")
	summary, err := h.usecase.SetDiscount(c.Request.Context(), sessionID, payload.DiscountPercent)
	h.respondEdit(c, sessionID, summary, err)
}

// Export renders the session summary with view as a file download.
func (h *SimulationHandler) Export(view budget.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")
		summary, err := h.usecase.Summary(c.Request.Context(), sessionID)
		if err != nil {
			appErr := mapSimulationError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="orcamento-%s.%s"`, sessionID, view.FileExtension()))
		c.Header("Content-Type", view.ContentType())
		c.Status(http.StatusOK)
		if err := view.Render(c.Writer, summary); err != nil {
			log.Printf("[simulation][handler] export failed session_id=%s format=%s err=%v", sessionID, view.FileExtension(), err)
			_ = c.Error(err)
		}
	}
}

func (h *SimulationHandler) respondEdit(c *gin.Context, sessionID string, summary budget.Summary, err error) {
	if err != nil {
		appErr := mapSimulationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respond(c, http.StatusOK, sessionID, summary)
}

func (h *SimulationHandler) respond(c *gin.Context, status int, sessionID string, summary budget.Summary) {
	res := response.FromSummary(summary, h.locale)
	res.SessionID = sessionID
	c.JSON(status, res)
}

func mapSimulationError(err error) *pkg.AppError {
	var verr *budget.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Simulation session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
