package oracle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"metalurgica_xpto/internal/domain/entities"
	"metalurgica_xpto/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnknownMaterial = errors.New("unknown material")
	ErrInvalidPrice    = errors.New("workbook returned non-numeric price")
)

// materialBlock maps a material to its fixed rows in the calculation sheet.
// Row layout mirrors the shop's workbook: one input block per material, and
// the price formula lives in column L of the price row.
type materialBlock struct {
	sheetRow int
	pieceRow int
	cutRow   int
	bendRow  int
	priceRow int
}

var blocks = map[entities.MaterialKind]materialBlock{
	entities.MaterialAcoCarbono: {sheetRow: 4, pieceRow: 12, cutRow: 20, bendRow: 28, priceRow: 4},
	entities.MaterialAluminio:   {sheetRow: 5, pieceRow: 13, cutRow: 21, bendRow: 29, priceRow: 5},
	entities.MaterialInox200300: {sheetRow: 6, pieceRow: 14, cutRow: 22, bendRow: 30, priceRow: 6},
	entities.MaterialInox400:    {sheetRow: 7, pieceRow: 15, cutRow: 23, bendRow: 31, priceRow: 7},
	entities.MaterialLatao:      {sheetRow: 8, pieceRow: 16, cutRow: 24, bendRow: 32, priceRow: 8},
	entities.MaterialCobre:      {sheetRow: 9, pieceRow: 17, cutRow: 25, bendRow: 33, priceRow: 9},
}

// WorkbookOracle prices pieces through the calculation workbook.
//
// The workbook holds a single input slot per material, so every call writes
// the piece inputs into the material's block and immediately evaluates the
// price cell. One mutex serializes all materials: the recompute dominates
// latency and the workbook's concurrency contract is unverified.
type WorkbookOracle struct {
	mu    sync.Mutex
	f     *excelize.File
	sheet string
}

var _ interfaces.IPricingOracle = (*WorkbookOracle)(nil)

func NewWorkbookOracle(path, sheet string) (*WorkbookOracle, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open calculation workbook: %w", err)
	}
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	log.Printf("[oracle] workbook loaded path=%s sheet=%s", path, sheet)
	return &WorkbookOracle{f: f, sheet: sheet}, nil
}

func (o *WorkbookOracle) Close() error {
	return o.f.Close()
}

func (o *WorkbookOracle) Price(ctx context.Context, batch entities.MaterialBatch, piece entities.Piece) (float64, error) {
	blk, ok := blocks[batch.Material]
	if !ok {
		return 0, ErrUnknownMaterial
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := o.writeInputs(blk, batch, piece); err != nil {
		return 0, err
	}
	return o.readCell(12, blk.priceRow) // column L
}

func (o *WorkbookOracle) ProcessHours(ctx context.Context, material entities.MaterialKind) (interfaces.ProcessHours, error) {
	blk, ok := blocks[material]
	if !ok {
		return interfaces.ProcessHours{}, ErrUnknownMaterial
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	cut, err := o.readCell(8, blk.cutRow) // column H
	if err != nil {
		return interfaces.ProcessHours{}, err
	}
	bend, err := o.readCell(8, blk.bendRow)
	if err != nil {
		return interfaces.ProcessHours{}, err
	}
	return interfaces.ProcessHours{Cut: cut, Bend: bend}, nil
}

// writeInputs fills the material block: batch geometry on the sheet row,
// piece geometry and lot counts on the piece row, times on the cut/bend rows.
func (o *WorkbookOracle) writeInputs(blk materialBlock, batch entities.MaterialBatch, piece entities.Piece) error {
	cells := []struct {
		col, row int
		val      float64
	}{
		{3, blk.sheetRow, batch.Length},    // C
		{4, blk.sheetRow, batch.Width},     // D
		{5, blk.sheetRow, batch.Thickness}, // E
		{2, blk.pieceRow, piece.Length},    // B
		{3, blk.pieceRow, piece.Width},     // C
		{5, blk.pieceRow, piece.LotQty},    // E
		{6, blk.pieceRow, piece.PiecesPerSheet},
		{5, blk.cutRow, piece.CutTime},
		{4, blk.bendRow, piece.BendCount},
		{5, blk.bendRow, piece.BendTime},
		{7, blk.bendRow, piece.BendSetup}, // G
	}
	for _, c := range cells {
		axis, err := excelize.CoordinatesToCellName(c.col, c.row)
		if err != nil {
			return err
		}
		if err := o.f.SetCellValue(o.sheet, axis, c.val); err != nil {
			return fmt.Errorf("write %s: %w", axis, err)
		}
	}
	return nil
}

// readCell evaluates the cell formula and parses the result. Evaluating on
// read is the flush step: the value reflects the inputs just written.
func (o *WorkbookOracle) readCell(col, row int) (float64, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return 0, err
	}
	raw, err := o.f.CalcCellValue(o.sheet, axis)
	if err != nil {
		return 0, fmt.Errorf("evaluate %s: %w", axis, err)
	}
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q at %s", ErrInvalidPrice, raw, axis)
	}
	return v, nil
}
