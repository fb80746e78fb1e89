package request

import (
	"encoding/json"
	"strings"
)

// GenerateContractRequest optionally links the contract to the quote it came from.
type GenerateContractRequest struct {
	BudgetID string `json:"budget_id"`
}

func (r GenerateContractRequest) ResolveBudgetID() string {
	return strings.TrimSpace(r.BudgetID)
}

// ContractPaymentRequest is the payload for charging one payment method.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
type ContractPaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
