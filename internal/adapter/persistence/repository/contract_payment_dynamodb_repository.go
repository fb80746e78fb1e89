package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/usecase/interfaces"
)

const (
	DefaultPaymentsTableName = "contract_payments"
	paymentsContractIDIndex  = "contract_id-index"

	// DefaultClaimTTL bounds how long a crashed charge keeps its method reserved.
	DefaultClaimTTL = 2 * time.Minute

	guardStatusProcessing = "processing"
	guardStatusPaid       = "aprovado"
)

type contractPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ContractID         string                 `dynamodbav:"contract_id"`
	PaymentMethodID    string                 `dynamodbav:"payment_method_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// ContractPaymentDynamoRepository persists ContractPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
//
// Charge guards live in the same table under "guard#<contract_id>:<method_id>".
// They carry no contract_id, so the GSI never returns them.
type ContractPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	claimTTL  time.Duration
	now       func() time.Time
}

var _ interfaces.IContractPaymentRepository = (*ContractPaymentDynamoRepository)(nil)

func NewContractPaymentDynamoRepository(ddb dynamoAPI, tableName string) *ContractPaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &ContractPaymentDynamoRepository{ddb: ddb, tableName: tableName, claimTTL: DefaultClaimTTL, now: time.Now}
}

func (r *ContractPaymentDynamoRepository) Create(ctx context.Context, p entities.ContractPayment) (entities.ContractPayment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toContractPaymentItem(p)); err != nil {
		return entities.ContractPayment{}, err
	}
	return p, nil
}

func (r *ContractPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractPayment, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || raw == nil {
		return entities.ContractPayment{}, err
	}
	return decodeContractPayment(raw)
}

func (r *ContractPaymentDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.ContractPayment, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, paymentsContractIDIndex, "contract_id", contractID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.ContractPayment, 0, len(raws))
	for _, raw := range raws {
		p, err := decodeContractPayment(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

// ClaimMethod reserves the method with a conditional put. A stale reservation
// (past its expiry) can be taken over; a paid method never can.
func (r *ContractPaymentDynamoRepository) ClaimMethod(ctx context.Context, contractID, methodID string) error {
	now := r.now().UTC()
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":         &types.AttributeValueMemberS{Value: guardID(contractID, methodID)},
			"status":     &types.AttributeValueMemberS{Value: guardStatusProcessing},
			"expires_at": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Add(r.claimTTL).Unix(), 10)},
			"updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id) OR (#status = :processing AND #expires_at < :now)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":processing": &types.AttributeValueMemberS{Value: guardStatusProcessing},
			":now":        &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return err
	}
	if st, ok := cfe.Item["status"].(*types.AttributeValueMemberS); ok && st.Value == guardStatusPaid {
		return interfaces.ErrMethodAlreadyPaid
	}
	return interfaces.ErrChargeInProgress
}

// SettleMethod marks the method as paid, or drops the reservation so the method
// can be charged again.
func (r *ContractPaymentDynamoRepository) SettleMethod(ctx context.Context, contractID, methodID, paymentID string, approved bool) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: guardID(contractID, methodID)},
	}
	if !approved {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key:       key,
		})
		return err
	}
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":         key["id"],
			"status":     &types.AttributeValueMemberS{Value: guardStatusPaid},
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
			"updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
	})
	return err
}

func guardID(contractID, methodID string) string {
	return "guard#" + contractID + ":" + methodID
}

func decodeContractPayment(raw map[string]types.AttributeValue) (entities.ContractPayment, error) {
	var it contractPaymentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.ContractPayment{}, err
	}
	return fromContractPaymentItem(it), nil
}

func toContractPaymentItem(p entities.ContractPayment) contractPaymentItem {
	return contractPaymentItem{
		ID:                 p.ID,
		ContractID:         p.ContractID,
		PaymentMethodID:    p.PaymentMethodID,
		Amount:             p.Amount.String(),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromContractPaymentItem(it contractPaymentItem) entities.ContractPayment {
	p := entities.ContractPayment{
		ID:              it.ID,
		ContractID:      it.ContractID,
		PaymentMethodID: it.PaymentMethodID,
		Amount:          parseDecimal(it.Amount),
		Date:            parseTime(it.Date),
		Status:          entities.PaymentStatus(it.Status),
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
