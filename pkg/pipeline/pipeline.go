// Package pipeline drives one batch through normalize, validate, transform,
// and dedup, in source order.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"

	"github.com/stellyes/catalog-csv-filtering/pkg/csvio"
	"github.com/stellyes/catalog-csv-filtering/pkg/dedup"
	"github.com/stellyes/catalog-csv-filtering/pkg/events"
	"github.com/stellyes/catalog-csv-filtering/pkg/metrics"
	"github.com/stellyes/catalog-csv-filtering/pkg/models"
	"github.com/stellyes/catalog-csv-filtering/pkg/normalizers"
	"github.com/stellyes/catalog-csv-filtering/pkg/reqcontext"
	"github.com/stellyes/catalog-csv-filtering/pkg/tracing"
	"github.com/stellyes/catalog-csv-filtering/pkg/transform"
	"github.com/stellyes/catalog-csv-filtering/pkg/validation"
)

// Pipeline orchestrates the row transformation engine. It is stateless across
// batches: all cross-record memory (the dedup indices) lives in a fresh dedup
// engine per Run, so independent batches can be processed concurrently by
// separate Run calls.
type Pipeline struct {
	logger      ectologger.Logger
	validator   *validation.Validator
	transformer *transform.Transformer
	emitter     *events.Emitter
}

// New creates a pipeline. emitter may be nil when no broker is configured.
func New(logger ectologger.Logger, emitter *events.Emitter) *Pipeline {
	return &Pipeline{
		logger:      logger,
		validator:   validation.New(),
		transformer: transform.New(),
		emitter:     emitter,
	}
}

// Run processes one batch to completion. Row-level failures are recoverable
// by exclusion and never abort the batch; reading the source document (which
// can fail the whole batch) has already happened by the time Run is called.
func (p *Pipeline) Run(ctx context.Context, batch *csvio.Batch) *models.BatchResult {
	ctx, span := tracing.StartSpan(ctx, "pipeline.Pipeline.Run")
	defer span.End()

	result := &models.BatchResult{
		BatchID:    uuid.New().String(),
		SourceRows: len(batch.Rows),
		StartedAt:  time.Now().UTC(),
	}
	ctx = reqcontext.SetBatchID(ctx, result.BatchID)

	log := p.logger.WithContext(ctx).WithFields(map[string]any{
		"batch_id":    result.BatchID,
		"source_rows": len(batch.Rows),
	})
	log.Debug("Processing batch")

	for _, col := range batch.Columns {
		if name := normalizers.NormalizeHeader(col); name != "" {
			result.SourceColumns = append(result.SourceColumns, name)
		}
	}

	engine := dedup.NewEngine()
	var supersessions []events.Supersession

	for i, raw := range batch.Rows {
		// Row 1 is the header, so the first data row is row 2.
		row := i + 2
		record := normalizers.NormalizeRecord(raw, batch.Columns)
		metrics.RowsProcessedTotal.Inc()

		admission, failure := p.validator.Validate(record)
		if failure != nil {
			result.Rejections = append(result.Rejections, models.RejectionEntry{
				Row:     row,
				Reason:  failure.Reason,
				Message: failure.Message,
				Name:    failure.Name,
			})
			metrics.RecordRejection(string(failure.Reason))
			continue
		}

		canonical := p.transformer.Transform(record, admission)
		outcome := engine.Admit(canonical, row)
		if outcome.Reason == "" {
			continue
		}

		result.Rejections = append(result.Rejections, models.RejectionEntry{
			Row:     outcome.ReplacedRow,
			Reason:  outcome.Reason,
			Message: supersededMessage(outcome, canonical, row),
			Name:    outcome.Replaced.Name,
		})
		metrics.RecordRejection(string(outcome.Reason))
		supersessions = append(supersessions, events.Supersession{
			Replacement: canonical,
			Superseded:  outcome.Replaced,
			Reason:      outcome.Reason,
		})
	}

	result.Records = engine.Records()
	result.AdmittedCount = engine.Len()
	result.CompletedAt = time.Now().UTC()

	metrics.RowsAdmittedTotal.Add(float64(result.AdmittedCount))
	metrics.RecordBatch("success", result.CompletedAt.Sub(result.StartedAt).Seconds())

	log.WithFields(map[string]any{
		"admitted": result.AdmittedCount,
		"rejected": len(result.Rejections),
	}).Info("Batch processed")

	_ = p.emitter.EmitProductsSuperseded(ctx, result.BatchID, supersessions)
	_ = p.emitter.EmitBatchCompleted(ctx, result)

	return result
}

func supersededMessage(outcome dedup.Outcome, replacement *models.CanonicalRecord, row int) string {
	switch outcome.Reason {
	case models.RejectReasonDuplicateExternalID:
		return fmt.Sprintf("Duplicate External ID '%s' (superseded by row %d)", replacement.ExternalID, row)
	default:
		return fmt.Sprintf("Likely duplicate of '%s' (superseded by row %d)", replacement.Name, row)
	}
}
