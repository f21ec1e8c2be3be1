package interfaces

import (
	"context"

	"metalurgica_xpto/internal/domain/entities"
)

// ProcessHours are the cut/bend hour totals the workbook reports for the
// material block currently loaded.
type ProcessHours struct {
	Cut  float64
	Bend float64
}

// IPricingOracle abstracts the external calculation workbook.
//
// Contract: the workbook keeps a single input slot per material — writing a
// piece overwrites the previous one, and the price is only valid immediately
// after the write is flushed. Implementations must serialize calls.

type IPricingOracle interface {
	Price(ctx context.Context, batch entities.MaterialBatch, piece entities.Piece) (float64, error)
	ProcessHours(ctx context.Context, material entities.MaterialKind) (ProcessHours, error)
}
