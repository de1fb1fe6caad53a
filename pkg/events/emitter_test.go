package events

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
)

func TestEmitterWithoutProducer(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(m ectologger.EctoLogMessage) {})
	ctx := context.Background()

	supersessions := []Supersession{{
		Replacement: &models.CanonicalRecord{ExternalID: "p-1", Name: "New"},
		Superseded:  &models.CanonicalRecord{ExternalID: "p-1", Name: "Old"},
		Reason:      models.RejectReasonDuplicateExternalID,
	}}

	t.Run("nil emitter emits nothing", func(t *testing.T) {
		var e *Emitter
		assert.NoError(t, e.EmitBatchCompleted(ctx, &models.BatchResult{}))
		assert.NoError(t, e.EmitProductsSuperseded(ctx, "batch-1", supersessions))
	})

	t.Run("emitter without producer emits nothing", func(t *testing.T) {
		e := NewEmitter(nil, logger)
		assert.NoError(t, e.EmitBatchCompleted(ctx, &models.BatchResult{}))
		assert.NoError(t, e.EmitProductsSuperseded(ctx, "batch-1", supersessions))
	})
}
