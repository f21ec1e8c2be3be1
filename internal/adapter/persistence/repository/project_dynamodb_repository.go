package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase"
	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projetos"

type projectItem struct {
	ProjectCode      string `dynamodbav:"project_code"`
	Client           string `dynamodbav:"cliente"`
	Description      string `dynamodbav:"descricao"`
	ClientContact    string `dynamodbav:"responsavel_cliente"`
	TotalValue       string `dynamodbav:"valor_total"`
	Date             string `dynamodbav:"data"`
	ProcessesSummary string `dynamodbav:"processos"`
	PDFLink          string `dynamodbav:"link_pdf"`
	MemoLink         string `dynamodbav:"link_memoria"`
	QuoteStatus      string `dynamodbav:"status_orcamento"`
	ProductionStatus string `dynamodbav:"status_pedido"`
	Deadline         string `dynamodbav:"prazo"`
	Notes            string `dynamodbav:"observacoes"`
	Payload          string `dynamodbav:"json_dados"`
	SavedAt          string `dynamodbav:"data_salvo"`
}

// ProjectDynamoRepository persists Project rows in DynamoDB.
//
// Table requirements:
//   - PK: project_code (string)
//
// Project code is the PK to guarantee one row per project: a second save of
// the same code overwrites instead of appending a duplicate.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Save(ctx context.Context, p entities.Project) (entities.Project, error) {
	if p.SavedAt.IsZero() {
		p.SavedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	var projects []entities.Project
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []projectItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			projects = append(projects, fromProjectItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) UpdateQuoteStatus(ctx context.Context, code string, status entities.QuoteStatus) (entities.Project, error) {
	return r.update(ctx, code, "status_orcamento", string(status))
}

func (r *ProjectDynamoRepository) UpdateProductionStatus(ctx context.Context, code string, stage entities.ProductionStatus) (entities.Project, error) {
	return r.update(ctx, code, "status_pedido", string(stage))
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, code string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_code": &types.AttributeValueMemberS{Value: code},
		},
	})
	return err
}

func (r *ProjectDynamoRepository) update(ctx context.Context, code, attr, value string) (entities.Project, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_code": &types.AttributeValueMemberS{Value: code},
		},
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		UpdateExpression:    aws.String("SET #attr = :value"),
		ExpressionAttributeNames: map[string]string{
			"#pk":   "project_code",
			"#attr": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		// The condition only fails when the row vanished between the
		// caller's read and this update.
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, usecase.ErrProjectNotFound
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, usecase.ErrProjectNotFound
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ProjectCode:      p.ProjectCode,
		Client:           p.Client,
		Description:      p.Description,
		ClientContact:    p.ClientContact,
		TotalValue:       floatToString(p.TotalValue),
		Date:             p.Date,
		ProcessesSummary: p.ProcessesSummary,
		PDFLink:          p.PDFLink,
		MemoLink:         p.MemoLink,
		QuoteStatus:      string(p.QuoteStatus),
		ProductionStatus: string(p.ProductionStatus),
		Deadline:         p.Deadline,
		Notes:            p.Notes,
		Payload:          string(p.Payload),
		SavedAt:          p.SavedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	total, _ := strconv.ParseFloat(it.TotalValue, 64)
	savedAt, _ := time.Parse(time.RFC3339Nano, it.SavedAt)
	p := entities.Project{
		ProjectCode:      it.ProjectCode,
		Client:           it.Client,
		Description:      it.Description,
		ClientContact:    it.ClientContact,
		TotalValue:       total,
		Date:             it.Date,
		ProcessesSummary: it.ProcessesSummary,
		PDFLink:          it.PDFLink,
		MemoLink:         it.MemoLink,
		QuoteStatus:      entities.QuoteStatus(it.QuoteStatus),
		ProductionStatus: entities.ProductionStatus(it.ProductionStatus),
		Deadline:         it.Deadline,
		Notes:            it.Notes,
		SavedAt:          savedAt,
	}
	if it.Payload != "" {
		p.Payload = []byte(it.Payload)
	}
	return p
}
