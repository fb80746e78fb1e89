package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/usecase/interfaces"
)

const DefaultContractsTableName = "contracts"

type contractItem struct {
	ID                string              `dynamodbav:"id"`
	Number            string              `dynamodbav:"number"`
	BudgetID          string              `dynamodbav:"budget_id,omitempty"`
	SessionID         string              `dynamodbav:"session_id"`
	ClientID          string              `dynamodbav:"client_id"`
	Client            clientItem          `dynamodbav:"client"`
	Environments      []environmentItem   `dynamodbav:"environments"`
	PaymentMethods    []paymentMethodItem `dynamodbav:"payment_methods"`
	Total             string              `dynamodbav:"total"`
	DiscountPercent   string              `dynamodbav:"discount_percent"`
	Negotiated        string              `dynamodbav:"negotiated"`
	PresentValueTotal string              `dynamodbav:"present_value_total"`
	Status            string              `dynamodbav:"status"`
	CreatedAt         string              `dynamodbav:"created_at"`
	UpdatedAt         string              `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ContractDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb dynamoAPI, tableName string) *ContractDynamoRepository {
	if tableName == "" {
		tableName = DefaultContractsTableName
	}
	return &ContractDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toContractItem(c)); err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Contract{}, err
	}
	return decodeContract(raw)
}

func (r *ContractDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ContractStatus, from []entities.ContractStatus) (entities.Contract, error) {
	attrs, found, err := updateStatus(ctx, r.ddb, r.tableName, id, string(status), statusStrings(from))
	if err != nil || !found {
		return entities.Contract{}, err
	}
	return decodeContract(attrs)
}

func decodeContract(raw map[string]types.AttributeValue) (entities.Contract, error) {
	var it contractItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:                c.ID,
		Number:            c.Number,
		BudgetID:          c.BudgetID,
		SessionID:         c.SessionID,
		ClientID:          c.Client.ID,
		Client:            toClientItem(c.Client),
		Environments:      toEnvironmentItems(c.Environments),
		PaymentMethods:    toPaymentMethodItems(c.PaymentMethods),
		Total:             c.Total.String(),
		DiscountPercent:   c.DiscountPercent.String(),
		Negotiated:        c.Negotiated.String(),
		PresentValueTotal: c.PresentValueTotal.String(),
		Status:            string(c.Status),
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:                it.ID,
		Number:            it.Number,
		BudgetID:          it.BudgetID,
		SessionID:         it.SessionID,
		Client:            fromClientItem(it.Client),
		Environments:      fromEnvironmentItems(it.Environments),
		PaymentMethods:    fromPaymentMethodItems(it.PaymentMethods),
		Total:             parseDecimal(it.Total),
		DiscountPercent:   parseDecimal(it.DiscountPercent),
		Negotiated:        parseDecimal(it.Negotiated),
		PresentValueTotal: parseDecimal(it.PresentValueTotal),
		Status:            entities.ContractStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
