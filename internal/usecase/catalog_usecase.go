package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductCode = errors.New("invalid product code")
)

// ICatalogUseCase maintains the PRD product catalog. Allocation of new codes
// lives in the allocator; this usecase only reads and edits existing entries.

type ICatalogUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByCode(ctx context.Context, code string) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
}

type CatalogUseCase struct {
	repo interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase) GetByCode(ctx context.Context, code string) (entities.Product, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !entities.HasCatalogCode(code) {
		return entities.Product{}, ErrInvalidProductCode
	}

	p, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Product{}, err
	}
	if p.Code == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Update edits an existing catalog entry in place. The code itself is
// immutable: it identifies the entry.
func (u *CatalogUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	if !entities.HasCatalogCode(p.Code) {
		return entities.Product{}, ErrInvalidProductCode
	}

	existing, err := u.repo.GetByCode(ctx, p.Code)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.Code == "" {
		return entities.Product{}, ErrProductNotFound
	}

	if err := u.repo.Upsert(ctx, p); err != nil {
		return entities.Product{}, err
	}
	log.Printf("[catalog][usecase] product updated code=%s", p.Code)
	return p, nil
}
