package repository

import (
	"context"

	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultBoardOrdersTableName = "kanban_ordens"

type boardOrderItem struct {
	Bucket string   `dynamodbav:"bucket"`
	Keys   []string `dynamodbav:"keys"`
}

// BoardOrderDynamoRepository stores the manual kanban card ordering, one item
// per bucket.
//
// Table requirements:
//   - PK: bucket (string)

type BoardOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBoardOrderRepository = (*BoardOrderDynamoRepository)(nil)

func NewBoardOrderDynamoRepository(ddb *dynamodb.Client) *BoardOrderDynamoRepository {
	return &BoardOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOARD_ORDERS_TABLE", defaultBoardOrdersTableName),
	}
}

func (r *BoardOrderDynamoRepository) Save(ctx context.Context, bucket string, keys []string) error {
	av, err := attributevalue.MarshalMap(boardOrderItem{Bucket: bucket, Keys: keys})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *BoardOrderDynamoRepository) GetAll(ctx context.Context) (map[string][]string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []boardOrderItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	orders := make(map[string][]string, len(items))
	for _, it := range items {
		orders[it.Bucket] = it.Keys
	}
	return orders, nil
}
