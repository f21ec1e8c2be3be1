package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStageLogsTableName = "tempos_reais"

type stageLogItem struct {
	LogKey          string `dynamodbav:"log_key"`
	Client          string `dynamodbav:"cliente"`
	ProjectCode     string `dynamodbav:"projeto"`
	Stage           string `dynamodbav:"processo"`
	StartedAt       string `dynamodbav:"inicio"`
	EndedAt         string `dynamodbav:"fim"`
	DurationMinutes string `dynamodbav:"duracao_minutos"`
	Open            bool   `dynamodbav:"em_execucao"`
}

// StageLogDynamoRepository persists stage-time audit entries.
//
// Table requirements:
//   - PK: log_key (string) — "cliente|projeto|processo"
//
// One slot per stage: re-entering a stage overwrites the previous timing for
// it, matching the shop's "last run wins" bookkeeping.

type StageLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStageLogRepository = (*StageLogDynamoRepository)(nil)

func NewStageLogDynamoRepository(ddb *dynamodb.Client) *StageLogDynamoRepository {
	return &StageLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STAGE_LOGS_TABLE", defaultStageLogsTableName),
	}
}

func stageLogKey(client, project string, stage entities.ProductionStatus) string {
	return client + "|" + project + "|" + string(stage)
}

func (r *StageLogDynamoRepository) OpenStage(ctx context.Context, client, project string, stage entities.ProductionStatus, at time.Time) error {
	it := stageLogItem{
		LogKey:      stageLogKey(client, project, stage),
		Client:      client,
		ProjectCode: project,
		Stage:       string(stage),
		StartedAt:   at.UTC().Format(time.RFC3339Nano),
		Open:        true,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *StageLogDynamoRepository) CloseStage(ctx context.Context, client, project string, stage entities.ProductionStatus, at time.Time) error {
	key := stageLogKey(client, project, stage)

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"log_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	if len(out.Item) == 0 {
		// Closing a stage that never opened is a no-op.
		return nil
	}
	var it stageLogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return err
	}
	if !it.Open {
		return nil
	}

	started, err := time.Parse(time.RFC3339Nano, it.StartedAt)
	if err != nil {
		return err
	}
	minutes := at.Sub(started).Minutes()

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"log_key": &types.AttributeValueMemberS{Value: key},
		},
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		UpdateExpression:    aws.String("SET #fim = :fim, #dur = :dur, #open = :open"),
		ExpressionAttributeNames: map[string]string{
			"#pk":   "log_key",
			"#fim":  "fim",
			"#dur":  "duracao_minutos",
			"#open": "em_execucao",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fim":  &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":dur":  &types.AttributeValueMemberS{Value: floatToString(minutes)},
			":open": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *StageLogDynamoRepository) ListByProject(ctx context.Context, client, project string) ([]entities.StageLog, error) {
	prefix := client + "|" + project + "|"

	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("begins_with(#pk, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "log_key",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []stageLogItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	logs := make([]entities.StageLog, 0, len(items))
	for _, it := range items {
		if !strings.HasPrefix(it.LogKey, prefix) {
			continue
		}
		logs = append(logs, fromStageLogItem(it))
	}
	return logs, nil
}

func fromStageLogItem(it stageLogItem) entities.StageLog {
	started, _ := time.Parse(time.RFC3339Nano, it.StartedAt)
	ended, _ := time.Parse(time.RFC3339Nano, it.EndedAt)
	dur, _ := strconv.ParseFloat(it.DurationMinutes, 64)
	return entities.StageLog{
		Client:          it.Client,
		ProjectCode:     it.ProjectCode,
		Stage:           entities.ProductionStatus(it.Stage),
		StartedAt:       started,
		EndedAt:         ended,
		DurationMinutes: dur,
		Open:            it.Open,
	}
}
