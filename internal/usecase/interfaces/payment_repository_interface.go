package interfaces

import (
	"context"

	"metalurgica_xpto/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for DownPayment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.DownPayment) (entities.DownPayment, error)
	ListByProject(ctx context.Context, projectCode string) ([]entities.DownPayment, error)
}
