// Package csvio reads the delimited export the pipeline consumes and writes
// the fixed-schema output document it produces.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
)

// ErrEmptySource is returned when the source document has no header row.
var ErrEmptySource = errors.New("source document has no header row")

// Batch is one fully-read source document: the raw header columns in source
// order and one record per data row. Column names are untouched here; header
// normalization happens in the pipeline.
type Batch struct {
	Columns []string
	Rows    []models.RawRecord
}

// Read consumes an entire delimited source. A malformed document is a batch
// fatal error: no partial batch is returned. Ragged rows are tolerated —
// missing cells read as empty values and surplus cells are dropped.
func Read(r io.Reader) (*Batch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptySource
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	batch := &Batch{Columns: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(batch.Rows)+2, err)
		}

		record := make(models.RawRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			} else {
				record[col] = ""
			}
		}
		batch.Rows = append(batch.Rows, record)
	}

	return batch, nil
}
