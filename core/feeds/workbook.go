package feeds

import (
	"context"
	"errors"
	"fmt"
	"io"

	"schedule-sync/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when the distribution workbook lacks the schedule sheet.
var ErrSheetNotFound = errors.New("schedule sheet not found")

// Workbook is a distribution feed spreadsheet.
// It reads the schedule area once on open and implements reconcile.Writer
// by appending source id tags to the description cell of a row.
type Workbook struct {
	file   *excelize.File
	sheet  string
	events []reconcile.Event
	rows   map[string]int
}

// OpenWorkbook reads the schedule area of sheet, starting at the 1-based firstRow.
func OpenWorkbook(r io.Reader, sheet string, firstRow int) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	w := &Workbook{file: f, sheet: sheet, rows: make(map[string]int)}
	if err := w.load(firstRow); err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

func (w *Workbook) load(firstRow int) error {
	if firstRow < 1 {
		firstRow = 1
	}

	rows, err := w.file.GetRows(w.sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", w.sheet, err)
	}

	for i := firstRow - 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		cells := make([]string, reconcile.DistributionWidth)
		copy(cells, rows[i])

		e, err := reconcile.NewDistributionEvent(cells)
		if err != nil {
			return fmt.Errorf("sheet %q row %d: %w", w.sheet, i+1, err)
		}
		w.events = append(w.events, e)
		if _, seen := w.rows[e.DistributionID]; e.DistributionID != "" && !seen {
			w.rows[e.DistributionID] = i + 1
		}
	}
	return nil
}

// Events returns the distribution records in sheet order.
func (w *Workbook) Events() []reconcile.Event {
	return w.events
}

// AppendSourceID appends the source id tag to the description of the first row holding distributionID.
func (w *Workbook) AppendSourceID(ctx context.Context, distributionID, sourceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row, ok := w.rows[distributionID]
	if !ok {
		return fmt.Errorf("distribution id %q not found in sheet %q", distributionID, w.sheet)
	}

	cell, err := excelize.CoordinatesToCellName(reconcile.CellDescription+1, row)
	if err != nil {
		return err
	}
	current, err := w.file.GetCellValue(w.sheet, cell)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cell, err)
	}
	if err := w.file.SetCellValue(w.sheet, cell, current+reconcile.FormatSourceIDTag(sourceID)); err != nil {
		return fmt.Errorf("failed to write %s: %w", cell, err)
	}
	return nil
}

// WriteTo serializes the workbook, including any appended tags.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	return w.file.WriteTo(out)
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.file.Close()
}
