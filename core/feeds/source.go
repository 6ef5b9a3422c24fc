package feeds

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"schedule-sync/core/reconcile"
)

// ErrMissingColumn is returned when the source header lacks a required column.
var ErrMissingColumn = errors.New("source feed missing column")

const byteOrderMark = "\ufeff"

// ReadSource parses a source schedule CSV export into events, in file order.
// Blank lines are skipped.
func ReadSource(r io.Reader) ([]reconcile.Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read source header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], byteOrderMark)

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range reconcile.SourceColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	var events []reconcile.Event
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read source line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}

		row := make(map[string]string, len(index))
		for name, i := range index {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		e, err := reconcile.NewSourceEvent(row)
		if err != nil {
			return nil, fmt.Errorf("source line %d: %w", line, err)
		}
		events = append(events, e)
	}
	return events, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
