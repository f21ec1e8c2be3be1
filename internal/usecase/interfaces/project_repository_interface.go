package interfaces

import (
	"context"

	"metalurgica_xpto/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project rows.
//
// One row per project code (PutItem upsert, never duplicate rows). A zero
// Project return with nil error means not-found, mirroring the repository
// convention used across this codebase.

type IProjectRepository interface {
	Save(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByCode(ctx context.Context, code string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	UpdateQuoteStatus(ctx context.Context, code string, status entities.QuoteStatus) (entities.Project, error)
	UpdateProductionStatus(ctx context.Context, code string, stage entities.ProductionStatus) (entities.Project, error)
	Delete(ctx context.Context, code string) error
}
