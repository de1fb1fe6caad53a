// Package normalizers provides field-name and key normalization for the
// catalog pipeline
package normalizers

import (
	"strings"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
)

// Fold normalizes a dedup key component: trimmed and case-folded so lookups
// use structural equality over normalized text
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeHeader canonicalizes a raw column name so downstream lookups are
// name-stable regardless of source formatting quirks:
// - strips a leading UTF-8 byte-order-mark artifact
// - trims surrounding whitespace
// - trims one layer of surrounding double or single quotes
func NormalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\uFEFF")
	name = strings.TrimSpace(name)

	if len(name) >= 2 {
		first, last := name[0], name[len(name)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			name = name[1 : len(name)-1]
		}
	}

	return name
}

// NormalizeRecord returns a copy of the record with every column name passed
// through NormalizeHeader. Names that normalize to the empty string are
// dropped along with their values. Two distinct raw names normalizing to the
// same key is an accepted lossy collision: the later column wins.
func NormalizeRecord(record models.RawRecord, columns []string) models.RawRecord {
	normalized := make(models.RawRecord, len(record))
	for _, col := range columns {
		key := NormalizeHeader(col)
		if key == "" {
			continue
		}
		normalized[key] = record[col]
	}
	return normalized
}
