package reqcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetRequestID(ctx))

	ctx = SetRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))
}

func TestBatchID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetBatchID(ctx))

	ctx = SetBatchID(ctx, "batch-1")
	assert.Equal(t, "batch-1", GetBatchID(ctx))
	assert.Equal(t, "", GetRequestID(ctx))
}
