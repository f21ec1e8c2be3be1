package repository

import (
	"context"
	"fmt"
	"strconv"

	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "contadores"

// CounterDynamoRepository implements the persisted counter on a single-item
// DynamoDB table.
//
// Table requirements:
//   - PK: name (string)
//
// Next is a single atomic UpdateItem: if_not_exists seeds the counter at the
// floor, the add happens server-side, so concurrent callers never see the
// same number twice.

type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterStore = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) Next(ctx context.Context, name string, floor int) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("SET #v = if_not_exists(#v, :floor) + :inc"),
		ExpressionAttributeNames: map[string]string{
			"#v": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":floor": &types.AttributeValueMemberN{Value: strconv.Itoa(floor)},
			":inc":   &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	av, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %q: unexpected attribute type", name)
	}
	v, err := strconv.Atoi(av.Value)
	if err != nil {
		return 0, fmt.Errorf("counter %q: %w", name, err)
	}
	return v, nil
}
