package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregationLogger_CarriesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAggregationLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx := WithCorrelationID(context.Background(), "trace-123")
	logger.LogAggregationCompleted(ctx, "root", "walk", 3, decimal.NewFromInt(600), 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "subtree aggregation completed", entry["msg"])
	assert.Equal(t, "aggregation_completed", entry["event_type"])
	assert.Equal(t, "trace-123", entry["correlation_id"])
	assert.Equal(t, "600.00", entry["sum"])
	assert.Equal(t, float64(3), entry["nodes_visited"])
}

func TestAggregationLogger_CycleIsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAggregationLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx := WithCorrelationID(context.Background(), "req-1")
	logger.LogCycleDetected(ctx, "a", "b")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "b", entry["node_id"])
	assert.Equal(t, "req-1", entry["correlation_id"])
}

func TestAggregationLogger_StartedIsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAggregationLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	logger.LogAggregationStarted(context.Background(), "a", "walk")

	assert.Empty(t, buf.String())
}

func TestCorrelationID(t *testing.T) {
	assert.Equal(t, "", CorrelationID(context.Background()))
	assert.Equal(t, "", CorrelationID(nil))
	assert.Equal(t, "c", CorrelationID(WithCorrelationID(context.Background(), "c")))
}

func TestCorrelationID_IgnoresPlainStringKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), "correlation_id", "foreign") //nolint:staticcheck

	assert.Equal(t, "", CorrelationID(ctx))
	assert.Equal(t, "own", CorrelationID(WithCorrelationID(ctx, "own")))
}
