// Package events handles event emission for processed feed batches
package events

import (
	"context"
	"encoding/json"

	"github.com/Gobusters/ectologger"

	"github.com/stellyes/catalog-csv-filtering/pkg/fingerprint"
	"github.com/stellyes/catalog-csv-filtering/pkg/kafka"
	"github.com/stellyes/catalog-csv-filtering/pkg/models"
	"github.com/stellyes/catalog-csv-filtering/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

const (
	EventTypeBatchCompleted    = "feed.batch.completed"
	EventTypeProductSuperseded = "feed.product.superseded"
)

// Emitter publishes batch lifecycle events. A nil Emitter is valid and emits
// nothing, so the pipeline can run without a broker configured.
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitBatchCompleted emits a summary event after a batch is fully processed
func (e *Emitter) EmitBatchCompleted(ctx context.Context, result *models.BatchResult) error {
	if e == nil || e.producer == nil {
		return nil
	}

	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitBatchCompleted")
	defer span.End()

	data, _ := json.Marshal(map[string]any{
		"schema_version": SchemaVersion,
		"admitted_count": result.AdmittedCount,
		"rejected_count": len(result.Rejections),
		"source_rows":    result.SourceRows,
		"started_at":     result.StartedAt,
		"completed_at":   result.CompletedAt,
	})

	event := &kafka.FeedEvent{
		EventType: EventTypeBatchCompleted,
		BatchID:   result.BatchID,
		Data:      data,
	}

	if err := e.producer.PublishFeedEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit batch.completed event")
		return err
	}

	return nil
}

// Supersession describes one dedup replacement: the record that was emitted
// in place of an earlier occurrence.
type Supersession struct {
	Replacement *models.CanonicalRecord
	Superseded  *models.CanonicalRecord
	Reason      models.RejectReason
}

// EmitProductsSuperseded publishes one event per dedup replacement in the
// batch, as a single produce call.
func (e *Emitter) EmitProductsSuperseded(ctx context.Context, batchID string, supersessions []Supersession) error {
	if e == nil || e.producer == nil || len(supersessions) == 0 {
		return nil
	}

	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitProductsSuperseded")
	defer span.End()

	feedEvents := make([]*kafka.FeedEvent, 0, len(supersessions))
	for _, s := range supersessions {
		data, _ := json.Marshal(map[string]any{
			"schema_version":          SchemaVersion,
			"reason":                  s.Reason,
			"external_id":             s.Replacement.ExternalID,
			"name":                    s.Replacement.Name,
			"superseded_fingerprint":  fingerprint.Record(s.Superseded),
			"replacement_fingerprint": fingerprint.Record(s.Replacement),
		})

		feedEvents = append(feedEvents, &kafka.FeedEvent{
			EventType: EventTypeProductSuperseded,
			BatchID:   batchID,
			Key:       s.Replacement.ExternalID,
			Data:      data,
		})
	}

	if err := e.producer.PublishFeedEvents(ctx, feedEvents); err != nil {
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit product.superseded events")
		return err
	}

	return nil
}
