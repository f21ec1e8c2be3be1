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
	ErrInvalidDate          = errors.New("invalid date, expected YYMMDD")
	ErrInvalidInitials      = errors.New("invalid initials")
	ErrDailyIndexExhausted  = errors.New("daily project index exhausted for date and initials")
	ErrCatalogCodeExhausted = errors.New("catalog code space exhausted")
)

const (
	orderNumberCounter = "numero_orcamento"
	orderNumberFloor   = 1463

	dailyIndexLetters = "abcdefghijklmnopqrstuvwxyz"
	maxCatalogNumber  = 99999
)

// IAllocatorUseCase hands out the three identifier families:
//
//   - sequential quote numbers (persisted counter, floored at the number the
//     shop had already reached on paper)
//   - PRD catalog codes (max existing + 1)
//   - daily project-index letters (a-z per date + author initials)

type IAllocatorUseCase interface {
	NextOrderNumber(ctx context.Context) (int, error)
	NextDailyIndex(ctx context.Context, date, initials string) (string, error)
	AssignCatalogCodes(ctx context.Context, payload entities.DraftPayload) (entities.DraftPayload, error)
}

type AllocatorUseCase struct {
	counters interfaces.ICounterStore
	projects interfaces.IProjectRepository
	catalog  interfaces.IProductRepository
}

var _ IAllocatorUseCase = (*AllocatorUseCase)(nil)

func NewAllocatorUseCase(counters interfaces.ICounterStore, projects interfaces.IProjectRepository, catalog interfaces.IProductRepository) *AllocatorUseCase {
	return &AllocatorUseCase{counters: counters, projects: projects, catalog: catalog}
}

func (u *AllocatorUseCase) NextOrderNumber(ctx context.Context) (int, error) {
	return u.counters.Next(ctx, orderNumberCounter, orderNumberFloor)
}

// NextDailyIndex returns the first unused letter for the date + initials
// pair. Project codes look like "260202aBR": YYMMDD, one index letter, then
// the author initials. All 26 letters taken is an error, not a silent reuse
// of "z".
func (u *AllocatorUseCase) NextDailyIndex(ctx context.Context, date, initials string) (string, error) {
	date = strings.TrimSpace(date)
	initials = strings.TrimSpace(initials)
	if len(date) != 6 {
		return "", ErrInvalidDate
	}
	if initials == "" {
		return "", ErrInvalidInitials
	}

	projects, err := u.projects.List(ctx)
	if err != nil {
		return "", err
	}

	used := make(map[byte]bool)
	for _, p := range projects {
		code := p.ProjectCode
		if len(code) < 8 || code[:6] != date {
			continue
		}
		rest := code[6:]
		if rest[1:] != initials {
			continue
		}
		used[lowerByte(rest[0])] = true
	}

	for i := 0; i < len(dailyIndexLetters); i++ {
		if !used[dailyIndexLetters[i]] {
			return string(dailyIndexLetters[i]), nil
		}
	}
	return "", ErrDailyIndexExhausted
}

// AssignCatalogCodes materializes PRD codes for every batch piece and product
// reference that lacks one, registering each item in the catalog. Each new
// code is one past the highest code on record, and the registration happens
// before the next code is derived so a crash mid-batch never reissues a code.
func (u *AllocatorUseCase) AssignCatalogCodes(ctx context.Context, payload entities.DraftPayload) (entities.DraftPayload, error) {
	next := 0

	assign := func(p entities.Product) (string, error) {
		if next == 0 {
			max, err := u.maxCatalogNumber(ctx)
			if err != nil {
				return "", err
			}
			next = max + 1
		}
		if next > maxCatalogNumber {
			return "", ErrCatalogCodeExhausted
		}

		p.Code = entities.FormatCatalogCode(next)
		if err := u.catalog.Upsert(ctx, p); err != nil {
			return "", err
		}
		log.Printf("[allocator] catalog code assigned code=%s description=%q", p.Code, p.Description)
		next++
		return p.Code, nil
	}

	out := payload
	out.Batches = make([]entities.MaterialBatch, len(payload.Batches))
	copy(out.Batches, payload.Batches)
	out.Products = make([]entities.ProductReference, len(payload.Products))
	copy(out.Products, payload.Products)

	for bi := range out.Batches {
		pieces := make([]entities.Piece, len(out.Batches[bi].Pieces))
		copy(pieces, out.Batches[bi].Pieces)
		out.Batches[bi].Pieces = pieces

		for pi := range pieces {
			if entities.HasCatalogCode(pieces[pi].Code) {
				continue
			}
			code, err := assign(entities.Product{Description: pieces[pi].Description})
			if err != nil {
				return entities.DraftPayload{}, err
			}
			pieces[pi].Code = code
		}
	}

	for i := range out.Products {
		if entities.HasCatalogCode(out.Products[i].Code) {
			continue
		}
		code, err := assign(entities.Product{
			Description: out.Products[i].Description,
			TaxCode:     out.Products[i].TaxCode,
			UnitPrice:   out.Products[i].UnitPrice,
			Unit:        out.Products[i].Unit,
		})
		if err != nil {
			return entities.DraftPayload{}, err
		}
		out.Products[i].Code = code
	}
	return out, nil
}

func (u *AllocatorUseCase) maxCatalogNumber(ctx context.Context) (int, error) {
	products, err := u.catalog.List(ctx)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, p := range products {
		if n := entities.ParseCatalogCode(p.Code); n > max {
			max = n
		}
	}
	return max, nil
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
