package repository

import (
	"context"
	"strconv"
	"time"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "sinais"

type paymentItem struct {
	ID          string `dynamodbav:"id"`
	ProjectCode string `dynamodbav:"projeto"`
	Amount      string `dynamodbav:"valor"`
	Date        string `dynamodbav:"data"`
	Status      string `dynamodbav:"status"`
	MPPayload   string `dynamodbav:"mp_payload"`
}

// PaymentDynamoRepository persists down payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string, provider payment id)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.DownPayment) (entities.DownPayment, error) {
	it := paymentItem{
		ID:          p.ID,
		ProjectCode: p.ProjectCode,
		Amount:      floatToString(p.Amount),
		Date:        p.Date.UTC().Format(time.RFC3339Nano),
		Status:      string(p.Status),
		MPPayload:   string(p.MPPayloadRaw),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DownPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DownPayment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByProject(ctx context.Context, projectCode string) ([]entities.DownPayment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#projeto = :projeto"),
		ExpressionAttributeNames: map[string]string{
			"#projeto": "projeto",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":projeto": &types.AttributeValueMemberS{Value: projectCode},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []paymentItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	payments := make([]entities.DownPayment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func fromPaymentItem(it paymentItem) entities.DownPayment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	p := entities.DownPayment{
		ID:          it.ID,
		ProjectCode: it.ProjectCode,
		Amount:      amount,
		Date:        date,
		Status:      entities.PaymentStatus(it.Status),
	}
	if it.MPPayload != "" {
		p.MPPayloadRaw = []byte(it.MPPayload)
	}
	return p
}
