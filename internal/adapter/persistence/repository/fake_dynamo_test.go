package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items in memory and understands the expressions the
// repositories send.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	queries  int
	failWith error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func idOf(key map[string]types.AttributeValue) string {
	if s, ok := key["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func conditionFailed(old map[string]types.AttributeValue, rv types.ReturnValuesOnConditionCheckFailure) error {
	cfe := &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	if rv == types.ReturnValuesOnConditionCheckFailureAllOld {
		cfe.Item = old
	}
	return cfe
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func numberAttr(item map[string]types.AttributeValue, name string) int64 {
	if n, ok := item[name].(*types.AttributeValueMemberN); ok {
		v, _ := strconv.ParseInt(n.Value, 10, 64)
		return v
	}
	return 0
}

// staleClaim evaluates "(#status = :processing AND #expires_at < :now)".
func staleClaim(existing map[string]types.AttributeValue, cond string, values map[string]types.AttributeValue) bool {
	if !strings.Contains(cond, "#expires_at < :now") {
		return false
	}
	processing := values[":processing"].(*types.AttributeValueMemberS).Value
	now, _ := strconv.ParseInt(values[":now"].(*types.AttributeValueMemberN).Value, 10, 64)
	return stringAttr(existing, "status") == processing && numberAttr(existing, "expires_at") < now
}

// statusAllowed evaluates "#status IN (:from0, ...)".
func statusAllowed(item map[string]types.AttributeValue, cond string, values map[string]types.AttributeValue) bool {
	_, list, ok := strings.Cut(cond, "#status IN (")
	if !ok {
		return true
	}
	list, _, _ = strings.Cut(list, ")")
	current := stringAttr(item, "status")
	for _, ph := range strings.Split(list, ",") {
		if v, ok := values[strings.TrimSpace(ph)].(*types.AttributeValueMemberS); ok && v.Value == current {
			return true
		}
	}
	return false
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	t := f.table(aws.ToString(in.TableName))
	id := idOf(in.Item)
	cond := aws.ToString(in.ConditionExpression)
	if existing, exists := t[id]; exists && strings.Contains(cond, "attribute_not_exists") && !staleClaim(existing, cond, in.ExpressionAttributeValues) {
		return nil, conditionFailed(existing, in.ReturnValuesOnConditionCheckFailure)
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[idOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	t := f.table(aws.ToString(in.TableName))
	item, ok := t[idOf(in.Key)]
	if !ok {
		return nil, conditionFailed(nil, in.ReturnValuesOnConditionCheckFailure)
	}
	if !statusAllowed(item, aws.ToString(in.ConditionExpression), in.ExpressionAttributeValues) {
		return nil, conditionFailed(item, in.ReturnValuesOnConditionCheckFailure)
	}
	updated := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		updated[k] = v
	}
	for _, assignment := range strings.Split(strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET "), ",") {
		lhs, rhs, _ := strings.Cut(strings.TrimSpace(assignment), " = ")
		updated[in.ExpressionAttributeNames[lhs]] = in.ExpressionAttributeValues[rhs]
	}
	t[idOf(in.Key)] = updated
	return &dynamodb.UpdateItemOutput{Attributes: updated}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	delete(f.table(aws.ToString(in.TableName)), idOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	if f.failWith != nil {
		return nil, f.failWith
	}
	attr := in.ExpressionAttributeNames["#k"]
	want := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS).Value

	var ids []string
	t := f.table(aws.ToString(in.TableName))
	for id, item := range t {
		if s, ok := item[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	if start := idOf(in.ExclusiveStartKey); start != "" {
		i := sort.SearchStrings(ids, start)
		if i < len(ids) && ids[i] == start {
			i++
		}
		ids = ids[i:]
	}

	out := &dynamodb.QueryOutput{}
	if f.pageSize > 0 && len(ids) > f.pageSize {
		ids = ids[:f.pageSize]
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ids[len(ids)-1]},
		}
	}
	for _, id := range ids {
		out.Items = append(out.Items, t[id])
	}
	return out, nil
}

var errDynamoDown = errors.New("dynamodb unavailable")
