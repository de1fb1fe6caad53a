package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
)

// Write renders the output document: the fixed 30-column header followed by
// one row per record, in the order given.
func Write(w io.Writer, records []*models.CanonicalRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(models.OutputColumns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		if err := writer.Write(record.Values()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
