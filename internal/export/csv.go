// Package export renders record lists and reports as CSV and PDF documents.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// BOM makes spreadsheet applications detect UTF-8.
const BOM = "\uFEFF"

// Column is one CSV column: a header and the cell value of each record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// WriteCSV writes a BOM, a header row and one row per record, with the
// columns in the given order.
func WriteCSV[T any](w io.Writer, records []T, columns []Column[T]) error {
	if _, err := io.WriteString(w, BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := writeTable(cw, records, columns); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeTable[T any](cw *csv.Writer, records []T, columns []Column[T]) error {
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Header
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, len(columns))
	for _, r := range records {
		for i, c := range columns {
			row[i] = c.Value(r)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}
