package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/usecase/interfaces"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

// Money is stored as decimal strings so no precision is lost to float64.

type clientItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Document string `dynamodbav:"document,omitempty"`
	Email    string `dynamodbav:"email,omitempty"`
	Phone    string `dynamodbav:"phone,omitempty"`
	Address  string `dynamodbav:"address,omitempty"`
}

type environmentItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Amount      string `dynamodbav:"amount"`
}

type paymentMethodItem struct {
	ID           string `dynamodbav:"id"`
	Type         string `dynamodbav:"type"`
	Description  string `dynamodbav:"description,omitempty"`
	Amount       string `dynamodbav:"amount"`
	PresentValue string `dynamodbav:"present_value,omitempty"`
	Installments int    `dynamodbav:"installments"`
	MonthlyRate  string `dynamodbav:"monthly_rate"`
	FirstDueDate string `dynamodbav:"first_due_date,omitempty"`
}

func toClientItem(c entities.ClientRef) clientItem {
	return clientItem(c)
}

func fromClientItem(it clientItem) entities.ClientRef {
	return entities.ClientRef(it)
}

func toEnvironmentItems(list []entities.Environment) []environmentItem {
	out := make([]environmentItem, 0, len(list))
	for _, e := range list {
		out = append(out, environmentItem{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Amount:      e.Amount.String(),
		})
	}
	return out
}

func fromEnvironmentItems(items []environmentItem) []entities.Environment {
	out := make([]entities.Environment, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Environment{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Amount:      parseDecimal(it.Amount),
		})
	}
	return out
}

func toPaymentMethodItems(list []entities.PaymentMethod) []paymentMethodItem {
	out := make([]paymentMethodItem, 0, len(list))
	for _, m := range list {
		it := paymentMethodItem{
			ID:           m.ID,
			Type:         string(m.Type),
			Description:  m.Description,
			Amount:       m.Amount.String(),
			Installments: m.Installments,
			MonthlyRate:  m.MonthlyRate.String(),
			FirstDueDate: formatTime(m.FirstDueDate),
		}
		if m.PresentValue.Valid {
			it.PresentValue = m.PresentValue.Decimal.String()
		}
		out = append(out, it)
	}
	return out
}

func fromPaymentMethodItems(items []paymentMethodItem) []entities.PaymentMethod {
	out := make([]entities.PaymentMethod, 0, len(items))
	for _, it := range items {
		m := entities.PaymentMethod{
			ID:           it.ID,
			Type:         entities.PaymentMethodType(it.Type),
			Description:  it.Description,
			Amount:       parseDecimal(it.Amount),
			Installments: it.Installments,
			MonthlyRate:  parseDecimal(it.MonthlyRate),
			FirstDueDate: parseTime(it.FirstDueDate),
		}
		if it.PresentValue != "" {
			m.PresentValue = decimal.NewNullDecimal(parseDecimal(it.PresentValue))
		}
		out = append(out, m)
	}
	return out
}

// parseDecimal returns zero for empty or malformed values.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// updateStatus sets status and updated_at on an existing item whose current
// status is one of from. A missing item yields found == false and no error; an
// item in any other status yields interfaces.ErrStatusConflict.
func updateStatus(ctx context.Context, ddb dynamoAPI, table, id, status string, from []string) (attrs map[string]types.AttributeValue, found bool, err error) {
	now := formatTime(time.Now())
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: status},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	condition := "attribute_exists(#id)"
	if len(from) > 0 {
		placeholders := make([]string, 0, len(from))
		for i, f := range from {
			ph := fmt.Sprintf(":from%d", i)
			placeholders = append(placeholders, ph)
			values[ph] = &types.AttributeValueMemberS{Value: f}
		}
		condition += " AND #status IN (" + strings.Join(placeholders, ", ") + ")"
	}

	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) > 0 {
				return nil, false, interfaces.ErrStatusConflict
			}
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(out.Attributes) == 0 {
		return nil, false, nil
	}
	return out.Attributes, true, nil
}

// putNew writes item and fails if the id already exists.
func putNew(ctx context.Context, ddb dynamoAPI, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// getByID loads the raw item with a consistent read. Missing items return nil.
func getByID(ctx context.Context, ddb dynamoAPI, table, id string) (map[string]types.AttributeValue, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

// queryIndex returns every item of a GSI partition, following pagination.
func queryIndex(ctx context.Context, ddb dynamoAPI, table, index, attr, value string) ([]map[string]types.AttributeValue, error) {
	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{
				"#k": attr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

func statusStrings[S ~string](list []S) []string {
	return lo.Map(list, func(s S, _ int) string { return string(s) })
}
