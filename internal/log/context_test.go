// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
}

func TestRequestIDFromContextMissing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, RequestIDFromContext(nil)) //nolint:staticcheck // nil ctx is part of the contract
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := ContextWithRequestID(context.Background(), "req-9")
	child := WithContext(ctx, logger)
	child.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
}

func TestWithContextWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	child := WithContext(context.Background(), logger)
	child.Info().Msg("hello")

	assert.NotContains(t, buf.String(), "request_id")
}
