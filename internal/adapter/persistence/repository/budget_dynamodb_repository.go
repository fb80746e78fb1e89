package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/usecase/interfaces"
)

const (
	DefaultBudgetsTableName = "budgets"
	budgetsClientIDIndex    = "client_id-index"
)

type budgetItem struct {
	ID                string              `dynamodbav:"id"`
	SessionID         string              `dynamodbav:"session_id"`
	ClientID          string              `dynamodbav:"client_id"`
	Client            clientItem          `dynamodbav:"client"`
	Environments      []environmentItem   `dynamodbav:"environments"`
	PaymentMethods    []paymentMethodItem `dynamodbav:"payment_methods"`
	Total             string              `dynamodbav:"total"`
	DiscountPercent   string              `dynamodbav:"discount_percent"`
	Negotiated        string              `dynamodbav:"negotiated"`
	PaymentsTotal     string              `dynamodbav:"payments_total"`
	PresentValueTotal string              `dynamodbav:"present_value_total"`
	Status            string              `dynamodbav:"status"`
	CreatedAt         string              `dynamodbav:"created_at"`
	UpdatedAt         string              `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
type BudgetDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb dynamoAPI, tableName string) *BudgetDynamoRepository {
	if tableName == "" {
		tableName = DefaultBudgetsTableName
	}
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toBudgetItem(b)); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.Budget{}, err
	}
	return decodeBudget(raw)
}

func (r *BudgetDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, budgetsClientIDIndex, "client_id", clientID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Budget, 0, len(raws))
	for _, raw := range raws {
		b, err := decodeBudget(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, nil
}

func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus, from []entities.BudgetStatus) (entities.Budget, error) {
	attrs, found, err := updateStatus(ctx, r.ddb, r.tableName, id, string(status), statusStrings(from))
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return decodeBudget(attrs)
}

func decodeBudget(raw map[string]types.AttributeValue) (entities.Budget, error) {
	var it budgetItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:                b.ID,
		SessionID:         b.SessionID,
		ClientID:          b.Client.ID,
		Client:            toClientItem(b.Client),
		Environments:      toEnvironmentItems(b.Environments),
		PaymentMethods:    toPaymentMethodItems(b.PaymentMethods),
		Total:             b.Total.String(),
		DiscountPercent:   b.DiscountPercent.String(),
		Negotiated:        b.Negotiated.String(),
		PaymentsTotal:     b.PaymentsTotal.String(),
		PresentValueTotal: b.PresentValueTotal.String(),
		Status:            string(b.Status),
		CreatedAt:         formatTime(b.CreatedAt),
		UpdatedAt:         formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:                it.ID,
		SessionID:         it.SessionID,
		Client:            fromClientItem(it.Client),
		Environments:      fromEnvironmentItems(it.Environments),
		PaymentMethods:    fromPaymentMethodItems(it.PaymentMethods),
		Total:             parseDecimal(it.Total),
		DiscountPercent:   parseDecimal(it.DiscountPercent),
		Negotiated:        parseDecimal(it.Negotiated),
		PaymentsTotal:     parseDecimal(it.PaymentsTotal),
		PresentValueTotal: parseDecimal(it.PresentValueTotal),
		Status:            entities.BudgetStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
