package repository

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// stubHTTPClient answers every request with one canned DynamoDB response.
type stubHTTPClient struct {
	status int
	body   string
}

func (s stubHTTPClient) Do(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: s.status,
		Header:     http.Header{"Content-Type": []string{"application/x-amz-json-1.0"}},
		Body:       io.NopCloser(bytes.NewReader([]byte(s.body))),
	}, nil
}

func newStubbedProjectRepository(status int, body string) *ProjectDynamoRepository {
	client := dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		Credentials:      credentials.NewStaticCredentialsProvider("local", "local", ""),
		BaseEndpoint:     aws.String("http://localhost:8000"),
		HTTPClient:       stubHTTPClient{status: status, body: body},
		RetryMaxAttempts: 1,
	})
	return &ProjectDynamoRepository{ddb: client, tableName: "projetos"}
}

func TestProjectDynamoRepository_StatusUpdates(t *testing.T) {
	ctx := context.Background()
	conditionFailed := `{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException","message":"The conditional request failed"}`

	t.Run("vanished row surfaces as not found on quote status", func(t *testing.T) {
		r := newStubbedProjectRepository(http.StatusBadRequest, conditionFailed)

		_, err := r.UpdateQuoteStatus(ctx, "260202aBR", entities.QuoteStatusConvertido)
		if !errors.Is(err, usecase.ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("vanished row surfaces as not found on production status", func(t *testing.T) {
		r := newStubbedProjectRepository(http.StatusBadRequest, conditionFailed)

		_, err := r.UpdateProductionStatus(ctx, "260202aBR", entities.StageCorte)
		if !errors.Is(err, usecase.ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}
