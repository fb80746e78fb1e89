package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "comercial_moveis/internal/adapter/http/dto/request"
	response "comercial_moveis/internal/adapter/http/dto/response"
	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/format"
	"comercial_moveis/internal/usecase"
	"comercial_moveis/pkg"
)

type ContractHandler struct {
	usecase usecase.IContractUseCase
	locale  format.Locale
}

func NewContractHandler(uc usecase.IContractUseCase, l format.Locale) *ContractHandler {
	return &ContractHandler{usecase: uc, locale: l}
}

// GenerateContract godoc
// @Summary      Generate a contract from a reconciled simulation
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                            true   "Session ID"
// @Param        body        body  request.GenerateContractRequest  false  "Optional quote link"
// @Success      201  {object}  response.ContractResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /simulations/{session_id}/contract [post]
func (h *ContractHandler) GenerateContract(c *gin.Context) {
	var payload request.GenerateContractRequest
	// The body is optional.
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	sessionID := c.Param("session_id")
	contract, err := h.usecase.GenerateContract(c.Request.Context(), sessionID, payload.ResolveBudgetID())
	if err != nil {
		log.Printf("[contract][handler] generate failed session_id=%s err=%v", sessionID, err)
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(contract, h.locale))
}

// GetContract godoc
// @Summary      Get a contract
// @Tags         contracts
// @Produce      json
// @Param        contract_id  path  string  true  "Contract ID"
// @Success      200  {object}  response.ContractResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contracts/{contract_id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract, h.locale))
}

func (h *ContractHandler) SignContract(c *gin.Context) {
	h.patchContractStatus(c, h.usecase.Sign)
}

func (h *ContractHandler) CancelContract(c *gin.Context) {
	h.patchContractStatus(c, h.usecase.Cancel)
}

func (h *ContractHandler) patchContractStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Contract, error),
) {
	contract, err := updater(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract, h.locale))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotAllowed):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_ALLOWED", "The payment plan must match the negotiated value", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractStatusTransition):
		return pkg.NewDomainErrorSimple("CONTRACT_STATUS_CONFLICT", "Contract status does not allow this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotLinkable):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_LINKABLE", "Budget cannot be linked to this contract", http.StatusConflict)
	default:
		return mapBudgetError(err)
	}
}
