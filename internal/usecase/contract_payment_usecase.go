package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/infrastructure/metrics"
	"comercial_moveis/internal/usecase/interfaces"
)

var (
	ErrContractPaymentNotFound        = errors.New("contract payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentMethodID         = errors.New("invalid payment method id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrContractNotPayable             = errors.New("contract not payable")
	ErrPaymentMethodNotInContract     = errors.New("payment method not in contract")
	ErrPaymentAlreadyApproved         = errors.New("payment method already paid")
	ErrPaymentInProgress              = errors.New("payment method charge in progress")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IContractPaymentUseCase charges the payment plan of a contract.
//
// Each payment method of the contract is charged on its own; the amount always
// comes from the stored contract, never from the request.
type IContractPaymentUseCase interface {
	Charge(ctx context.Context, contractID, methodID string, mpPayload json.RawMessage) (entities.ContractPayment, error)
	GetByID(ctx context.Context, id string) (entities.ContractPayment, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.ContractPayment, error)
}

// PaymentOptions carries the Mercado Pago settings the payload rules depend on.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

type ContractPaymentUseCase struct {
	repo      interfaces.IContractPaymentRepository
	contracts interfaces.IContractRepository
	gateway   interfaces.IPaymentGateway
	opts      PaymentOptions
	locks     keyedMutex
}

var _ IContractPaymentUseCase = (*ContractPaymentUseCase)(nil)

func NewContractPaymentUseCase(repo interfaces.IContractPaymentRepository, contracts interfaces.IContractRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *ContractPaymentUseCase {
	return &ContractPaymentUseCase{repo: repo, contracts: contracts, gateway: gateway, opts: opts}
}

// Charge pays one method of the contract. Charges for the same contract method
// are serialized in process and claimed in the repository before the gateway
// is called, so a method is never charged twice.
func (u *ContractPaymentUseCase) Charge(ctx context.Context, contractID, methodID string, mpPayload json.RawMessage) (entities.ContractPayment, error) {
	log.Printf("[payment][usecase] charge start raw_contract_id=%q raw_method_id=%q payload_len=%d", contractID, methodID, len(mpPayload))
	contractID = strings.TrimSpace(contractID)
	methodID = strings.TrimSpace(methodID)
	if contractID == "" {
		return entities.ContractPayment{}, ErrInvalidContractID
	}
	if methodID == "" {
		return entities.ContractPayment{}, ErrInvalidPaymentMethodID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			log.Printf("[payment][usecase] invalid payload contract_id=%s", contractID)
			return entities.ContractPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured contract_id=%s", contractID)
		return entities.ContractPayment{}, errors.New("payment gateway not configured")
	}

	unlock := u.locks.Lock(contractID + ":" + methodID)
	defer unlock()

	contract, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading contract contract_id=%s err=%v", contractID, err)
		return entities.ContractPayment{}, err
	}
	if contract.ID == "" {
		return entities.ContractPayment{}, ErrContractNotFound
	}
	if contract.Status == entities.ContractStatusCancelado {
		log.Printf("[payment][usecase] contract not payable contract_id=%s status=%s", contractID, contract.Status)
		return entities.ContractPayment{}, ErrContractNotPayable
	}
	method, ok := contract.PaymentMethod(methodID)
	if !ok {
		return entities.ContractPayment{}, ErrPaymentMethodNotInContract
	}

	existing, err := u.repo.ListByContractID(ctx, contractID)
	if err != nil {
		return entities.ContractPayment{}, err
	}
	for _, p := range existing {
		if p.PaymentMethodID == methodID && p.Status == entities.PaymentStatusAprovado {
			log.Printf("[payment][usecase] method already paid contract_id=%s method_id=%s payment_id=%s", contractID, methodID, p.ID)
			return entities.ContractPayment{}, ErrPaymentAlreadyApproved
		}
	}

	mpPayload, err = u.enrichPayload(mpPayload, contract, method)
	if err != nil {
		return entities.ContractPayment{}, err
	}

	if err := u.repo.ClaimMethod(ctx, contractID, methodID); err != nil {
		log.Printf("[payment][usecase] claim rejected contract_id=%s method_id=%s err=%v", contractID, methodID, err)
		switch {
		case errors.Is(err, interfaces.ErrMethodAlreadyPaid):
			return entities.ContractPayment{}, ErrPaymentAlreadyApproved
		case errors.Is(err, interfaces.ErrChargeInProgress):
			return entities.ContractPayment{}, ErrPaymentInProgress
		}
		return entities.ContractPayment{}, err
	}

	log.Printf("[payment][usecase] calling payment gateway contract_id=%s method_id=%s amount=%s", contractID, methodID, method.Amount)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed contract_id=%s err=%v", contractID, err)
		u.settle(ctx, contractID, methodID, "", false)
		return entities.ContractPayment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success contract_id=%s provider_payment_id=%s provider_status=%s", contractID, providerPaymentID, providerStatus)

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed contract_id=%s err=%v", contractID, err)
	}
	if providerPaymentID == "" {
		providerPaymentID = uuid.NewString()
	}

	p := entities.ContractPayment{
		ID:                 providerPaymentID,
		ContractID:         contractID,
		PaymentMethodID:    methodID,
		Amount:             method.Amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	u.settle(ctx, contractID, methodID, p.ID, p.Status == entities.PaymentStatusAprovado)

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed contract_id=%s payment_id=%s err=%v", contractID, p.ID, err)
		return entities.ContractPayment{}, err
	}
	metrics.PaymentsTotal.WithLabelValues(string(created.Status)).Inc()
	log.Printf("[payment][usecase] charge success contract_id=%s payment_id=%s status=%s", contractID, created.ID, created.Status)
	return created, nil
}

// settle records the outcome on the method claim. A failure only delays the
// next charge until the claim expires.
func (u *ContractPaymentUseCase) settle(ctx context.Context, contractID, methodID, paymentID string, approved bool) {
	if err := u.repo.SettleMethod(ctx, contractID, methodID, paymentID, approved); err != nil {
		log.Printf("[payment][usecase] settle claim failed contract_id=%s method_id=%s err=%v", contractID, methodID, err)
	}
}

// enrichPayload links the provider payment to the contract method and forces
// the amount from the contract.
func (u *ContractPaymentUseCase) enrichPayload(payload json.RawMessage, contract entities.Contract, method entities.PaymentMethod) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] payload is not an object contract_id=%s", contract.ID)
		return nil, ErrInvalidMPPayload
	}

	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id contract_id=%s", contract.ID)
			return nil, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer contract_id=%s", contract.ID)
			return nil, ErrInvalidMPPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = contract.ID + ":" + method.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Contrato %s - %s", contract.Number, method.ID)
	}
	if method.Installments > 0 {
		if _, ok := reqMap["installments"]; !ok {
			reqMap["installments"] = method.Installments
		}
	}
	reqMap["transaction_amount"] = method.Amount.InexactFloat64()

	b, err := json.Marshal(reqMap)
	if err != nil {
		return nil, err
	}
	log.Printf("[payment][usecase] payload enriched contract_id=%s payload_len=%d", contract.ID, len(b))
	return b, nil
}

func (u *ContractPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Fill email only when both id and email are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.opts.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email.
func (u *ContractPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.opts.sandbox() {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func (u *ContractPaymentUseCase) GetByID(ctx context.Context, id string) (entities.ContractPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContractPayment{}, err
	}
	if p.ID == "" {
		return entities.ContractPayment{}, ErrContractPaymentNotFound
	}
	return p, nil
}

func (u *ContractPaymentUseCase) ListByContractID(ctx context.Context, contractID string) ([]entities.ContractPayment, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	return u.repo.ListByContractID(ctx, contractID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// classifyGatewayError maps Mercado Pago error bodies to sentinel errors.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
