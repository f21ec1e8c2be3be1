package interfaces

import (
	"context"
	"time"

	"metalurgica_xpto/internal/domain/entities"
)

// IStageLogRepository persists stage-time audit entries keyed by
// client|project|stage. OpenStage records the entry timestamp; CloseStage
// fills the end timestamp and duration of the open entry, if any.

type IStageLogRepository interface {
	OpenStage(ctx context.Context, client, project string, stage entities.ProductionStatus, at time.Time) error
	CloseStage(ctx context.Context, client, project string, stage entities.ProductionStatus, at time.Time) error
	ListByProject(ctx context.Context, client, project string) ([]entities.StageLog, error)
}
