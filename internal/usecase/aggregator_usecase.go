package usecase

import (
	"context"
	"log"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"
)

// IAggregatorUseCase turns the quote form into priced line items.
//
// Pieces are priced one at a time through the calculation workbook; assembly
// batches ("conjuntos") are folded into a single consolidated line; catalog
// products pass through at their stored unit price.

type IAggregatorUseCase interface {
	Aggregate(ctx context.Context, payload entities.DraftPayload) ([]entities.PricedLineItem, float64, error)
	ProcessesTotal(processes []entities.OrderProcess) float64
}

type AggregatorUseCase struct {
	oracle interfaces.IPricingOracle
}

var _ IAggregatorUseCase = (*AggregatorUseCase)(nil)

func NewAggregatorUseCase(oracle interfaces.IPricingOracle) *AggregatorUseCase {
	return &AggregatorUseCase{oracle: oracle}
}

// Aggregate prices every batch piece, folds assemblies and appends catalog
// products, returning the line items plus the grand total (line items +
// order processes).
func (u *AggregatorUseCase) Aggregate(ctx context.Context, payload entities.DraftPayload) ([]entities.PricedLineItem, float64, error) {
	items, err := u.priceBatches(ctx, payload.Batches)
	if err != nil {
		return nil, 0, err
	}

	for _, prod := range payload.Products {
		items = append(items, entities.PricedLineItem{
			Code:        prod.Code,
			Description: prod.Description,
			Quantity:    prod.Quantity,
			UnitPrice:   prod.UnitPrice,
			Total:       prod.UnitPrice * prod.Quantity,
		})
	}

	var total float64
	for _, it := range items {
		total += it.Total
	}
	total += u.ProcessesTotal(payload.OrderProcesses)

	return items, total, nil
}

// ProcessesTotal sums the outsourced/extra order processes.
func (u *AggregatorUseCase) ProcessesTotal(processes []entities.OrderProcess) float64 {
	var total float64
	for _, p := range processes {
		total += p.Total()
	}
	return total
}

// priceBatches prices each piece of each batch, then replaces the lines of
// every assembly batch with one consolidated line. An assembly line folds the
// matching piece lines (same code, description and quantity) already emitted;
// pieces with no matching line are re-priced directly.
func (u *AggregatorUseCase) priceBatches(ctx context.Context, batches []entities.MaterialBatch) ([]entities.PricedLineItem, error) {
	items := make([]entities.PricedLineItem, 0, len(batches))

	for _, batch := range batches {
		if !batch.Material.Known() {
			log.Printf("[aggregator] skipping batch with unknown material=%q", batch.Material)
			continue
		}
		for _, piece := range batch.Pieces {
			unit := u.unitPrice(ctx, batch, piece)
			qty := piece.LotQty
			items = append(items, entities.PricedLineItem{
				Code:        piece.Code,
				Description: piece.Description,
				Quantity:    qty,
				UnitPrice:   unit,
				Total:       unit * qty,
			})
		}
	}

	var assemblies []entities.PricedLineItem
	for _, batch := range batches {
		if !batch.IsAssembly || !batch.Material.Known() {
			continue
		}

		var sum float64
		for _, piece := range batch.Pieces {
			idx := findLine(items, piece)
			if idx >= 0 {
				sum += items[idx].Total
				items = append(items[:idx], items[idx+1:]...)
				continue
			}
			// Piece line was folded elsewhere or never emitted: price directly.
			sum += u.unitPrice(ctx, batch, piece) * piece.LotQty
		}

		desc := batch.AsmDesc
		if desc == "" {
			desc = "Conjunto"
		}
		qty := batch.AsmQty
		if qty == 0 {
			qty = 1
		}
		assemblies = append(assemblies, entities.PricedLineItem{
			Code:        batch.AsmCode,
			Description: desc,
			Quantity:    qty,
			UnitPrice:   sum,
			Total:       sum * qty,
		})
	}

	return append(items, assemblies...), nil
}

// unitPrice is the workbook price plus the piece's per-unit additional
// processes. A workbook failure prices the piece at the additionals alone so
// one bad cell never sinks the whole quote.
func (u *AggregatorUseCase) unitPrice(ctx context.Context, batch entities.MaterialBatch, piece entities.Piece) float64 {
	price, err := u.oracle.Price(ctx, batch, piece)
	if err != nil {
		log.Printf("[aggregator] workbook price failed material=%s code=%q err=%v", batch.Material, piece.Code, err)
		price = 0
	}
	return price + piece.AdditionalsTotal
}

func findLine(items []entities.PricedLineItem, piece entities.Piece) int {
	for i, it := range items {
		if it.Description == piece.Description && it.Code == piece.Code && it.Quantity == piece.LotQty {
			return i
		}
	}
	return -1
}
