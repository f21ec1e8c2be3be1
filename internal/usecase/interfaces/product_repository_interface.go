package interfaces

import (
	"context"

	"metalurgica_xpto/internal/domain/entities"
)

// IProductRepository abstracts the PRD catalog ("Relação de produtos").
// Codes are assigned by the allocator; the repository only stores rows.

type IProductRepository interface {
	Upsert(ctx context.Context, p entities.Product) error
	GetByCode(ctx context.Context, code string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
