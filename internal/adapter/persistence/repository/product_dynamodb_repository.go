package repository

import (
	"context"
	"strconv"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "produtos"

type productItem struct {
	Code        string `dynamodbav:"codigo"`
	Description string `dynamodbav:"descricao"`
	TaxCode     string `dynamodbav:"ncm"`
	UnitPrice   string `dynamodbav:"preco"`
	Unit        string `dynamodbav:"unidade"`
}

// ProductDynamoRepository persists the PRD catalog in DynamoDB.
//
// Table requirements:
//   - PK: codigo (string)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Upsert(ctx context.Context, p entities.Product) error {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ProductDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"codigo": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			products = append(products, fromProductItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return products, nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		Code:        p.Code,
		Description: p.Description,
		TaxCode:     p.TaxCode,
		UnitPrice:   floatToString(p.UnitPrice),
		Unit:        p.Unit,
	}
}

func fromProductItem(it productItem) entities.Product {
	price, _ := strconv.ParseFloat(it.UnitPrice, 64)
	return entities.Product{
		Code:        it.Code,
		Description: it.Description,
		TaxCode:     it.TaxCode,
		UnitPrice:   price,
		Unit:        it.Unit,
	}
}
