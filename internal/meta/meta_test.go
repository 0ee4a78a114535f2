// Package meta_test contains tests for the meta package.
package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/filevault/internal/meta"
)

func TestInjectMetaToContext(t *testing.T) {
	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.RequestID:   "req-123",
		meta.IPAddress:   "10.0.0.1",
		meta.ServiceName: "",
	})

	assert.Equal(t, "req-123", meta.Find(ctx, meta.RequestID))
	assert.Equal(t, "10.0.0.1", meta.Find(ctx, meta.IPAddress))

	// empty values are not injected
	assert.Empty(t, meta.Find(ctx, meta.ServiceName))
	assert.Empty(t, meta.Find(ctx, meta.UserAgent))
}

func TestExtractMetaFromContext(t *testing.T) {
	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.RequestID: "req-456",
		meta.UserAgent: "curl/8.0",
	})

	got := meta.ExtractMetaFromContext(ctx)

	assert.Equal(t, map[meta.ContextKey]string{
		meta.RequestID: "req-456",
		meta.UserAgent: "curl/8.0",
	}, got)
}

func TestExtractMetaFromEmptyContext(t *testing.T) {
	assert.Empty(t, meta.ExtractMetaFromContext(t.Context()))
}
