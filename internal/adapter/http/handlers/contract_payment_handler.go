package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	response "comercial_moveis/internal/adapter/http/dto/response"
	"comercial_moveis/internal/format"
	"comercial_moveis/internal/usecase"
	"comercial_moveis/pkg"
)

// ContractPaymentHandler charges contract payment methods through the payment provider.
type ContractPaymentHandler struct {
	usecase  usecase.IContractPaymentUseCase
	locale   format.Locale
	mockMode bool
}

func NewContractPaymentHandler(uc usecase.IContractPaymentUseCase, l format.Locale, mockMode bool) *ContractPaymentHandler {
	return &ContractPaymentHandler{usecase: uc, locale: l, mockMode: mockMode}
}

// Charge godoc
// @Summary      Charge one payment method of a contract
// @Description  Body is the Mercado Pago payment payload, bare or wrapped in {"mp_payload": ...}. The amount always comes from the contract.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        contract_id  path  string  true  "Contract ID"
// @Param        method_id    path  string  true  "Payment method ID"
// @Success      200  {object}  response.ContractPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /contracts/{contract_id}/payments/{method_id} [post]
func (h *ContractPaymentHandler) Charge(c *gin.Context) {
	contractID := c.Param("contract_id")
	methodID := c.Param("method_id")
	log.Printf("[payment][handler] charge start contract_id=%s method_id=%s", contractID, methodID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload contract_id=%s err=%v", contractID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload contract_id=%s err=%v", contractID, err)
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.Charge(c.Request.Context(), contractID, methodID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] charge failed contract_id=%s method_id=%s err=%v", contractID, methodID, err)
		appErr := mapContractPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge success contract_id=%s payment_id=%s status=%s", contractID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromContractPayment(created, h.locale))
}

// ListByContract godoc
// @Summary      List the payments of a contract
// @Tags         payments
// @Produce      json
// @Param        contract_id  path  string  true  "Contract ID"
// @Success      200  {array}  response.ContractPaymentResponse
// @Router       /contracts/{contract_id}/payments [get]
func (h *ContractPaymentHandler) ListByContract(c *gin.Context) {
	contractID := c.Param("contract_id")
	payments, err := h.usecase.ListByContractID(c.Request.Context(), contractID)
	if err != nil {
		log.Printf("[payment][handler] list failed contract_id=%s err=%v", contractID, err)
		appErr := mapContractPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractPayments(payments, h.locale))
}

// GetPayment godoc
// @Summary      Get a contract payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path  string  true  "Payment ID"
// @Success      200  {object}  response.ContractPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *ContractPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapContractPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractPayment(p, h.locale))
}

// readMPPayload accepts the provider payload bare or wrapped in "mp_payload".
// An empty body becomes "{}".
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapContractPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidPaymentMethodID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMethodNotInContract):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not in contract", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractNotPayable):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_PAYABLE", "Contract is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAlreadyApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_APPROVED", "Payment method already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "Payment method charge already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrContractPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
