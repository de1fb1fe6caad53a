// Package dedup reconciles colliding canonical records into a single emitted
// set. Collisions resolve last-occurrence-wins: the later record replaces the
// earlier one wholesale, at the earlier record's position, so output order is
// first-occurrence order while content is from the last occurrence.
package dedup

import (
	"github.com/stellyes/catalog-csv-filtering/pkg/models"
	"github.com/stellyes/catalog-csv-filtering/pkg/normalizers"
)

// fuzzyKey is the weak duplicate signal for records without a stable id.
// Components are trimmed and case-folded; empty size/prevalence components
// still participate, which can over-merge same-named records lacking that
// data — preserved source behavior.
type fuzzyKey struct {
	name       string
	size       string
	prevalence string
}

// Outcome reports how one record was reconciled into the emitted set.
type Outcome struct {
	// Position is the record's slot in the emitted sequence.
	Position int
	// Reason is empty for a genuinely new record, otherwise the duplicate
	// reason that caused a replacement.
	Reason models.RejectReason
	// Replaced is the superseded record when Reason is set.
	Replaced *models.CanonicalRecord
	// ReplacedRow is the source row of the superseded occupant.
	ReplacedRow int
}

// Engine holds the per-batch dedup state. It is owned by one orchestrator
// invocation and must not be shared across batches.
type Engine struct {
	records      []*models.CanonicalRecord
	rows         []int
	byExternalID map[string]int
	byFuzzyKey   map[fuzzyKey]int
}

// NewEngine creates an empty dedup engine for one batch.
func NewEngine() *Engine {
	return &Engine{
		byExternalID: make(map[string]int),
		byFuzzyKey:   make(map[fuzzyKey]int),
	}
}

// Admit reconciles one transformed record, in stream order, into the emitted
// set. row is the record's source row number.
func (e *Engine) Admit(record *models.CanonicalRecord, row int) Outcome {
	// An empty External ID is "no exact key": never indexed, never matched.
	if id := record.ExternalID; id != "" {
		if pos, ok := e.byExternalID[id]; ok {
			return e.replace(pos, record, row, models.RejectReasonDuplicateExternalID)
		}
	}

	key := fuzzyKeyFor(record)
	if key.name != "" {
		if pos, ok := e.byFuzzyKey[key]; ok {
			return e.replace(pos, record, row, models.RejectReasonLikelyDuplicate)
		}
	}

	pos := len(e.records)
	e.records = append(e.records, record)
	e.rows = append(e.rows, row)
	if record.ExternalID != "" {
		e.byExternalID[record.ExternalID] = pos
	}
	if key.name != "" {
		e.byFuzzyKey[key] = pos
	}

	return Outcome{Position: pos}
}

// replace substitutes the whole record at pos and takes over its slot's
// source row. Indices are not re-registered: the slot keeps its original keys.
func (e *Engine) replace(pos int, record *models.CanonicalRecord, row int, reason models.RejectReason) Outcome {
	replaced := e.records[pos]
	replacedRow := e.rows[pos]
	e.records[pos] = record
	e.rows[pos] = row

	return Outcome{
		Position:    pos,
		Reason:      reason,
		Replaced:    replaced,
		ReplacedRow: replacedRow,
	}
}

// Records returns the emitted sequence in first-occurrence order.
func (e *Engine) Records() []*models.CanonicalRecord {
	return e.records
}

// Len returns the number of emitted records.
func (e *Engine) Len() int {
	return len(e.records)
}

func fuzzyKeyFor(record *models.CanonicalRecord) fuzzyKey {
	return fuzzyKey{
		name:       normalizers.Fold(record.Name),
		size:       normalizers.Fold(record.Size),
		prevalence: normalizers.Fold(record.StrainPrevalence),
	}
}
