package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

type AggregationLogger struct {
	logger *slog.Logger
}

func NewAggregationLogger(logger *slog.Logger) AggregationLoggerInterface {
	return &AggregationLogger{
		logger: logger,
	}
}

func (al *AggregationLogger) LogAggregationStarted(ctx context.Context, rootID, strategy string) {
	al.logger.DebugContext(ctx, "subtree aggregation started",
		slog.String("event_type", "aggregation_started"),
		slog.String("root_id", rootID),
		slog.String("strategy", strategy),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AggregationLogger) LogAggregationCompleted(ctx context.Context, rootID, strategy string, nodesVisited int, sum decimal.Decimal, durationMs int64) {
	al.logger.InfoContext(ctx, "subtree aggregation completed",
		slog.String("event_type", "aggregation_completed"),
		slog.String("root_id", rootID),
		slog.String("strategy", strategy),
		slog.Int("nodes_visited", nodesVisited),
		slog.String("sum", sum.StringFixed(2)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AggregationLogger) LogAggregationFailed(ctx context.Context, rootID, strategy string, errorMsg string, durationMs int64) {
	al.logger.WarnContext(ctx, "subtree aggregation failed",
		slog.String("event_type", "aggregation_failed"),
		slog.String("root_id", rootID),
		slog.String("strategy", strategy),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// LogCycleDetected records a node reached twice in one traversal. The sum is an undercount.
func (al *AggregationLogger) LogCycleDetected(ctx context.Context, rootID, nodeID string) {
	al.logger.WarnContext(ctx, "cycle detected in transaction tree",
		slog.String("event_type", "cycle_detected"),
		slog.String("root_id", rootID),
		slog.String("node_id", nodeID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AggregationLogger) LogParentRejected(ctx context.Context, transactionID, parentID, reason string) {
	al.logger.WarnContext(ctx, "parent rejected",
		slog.String("event_type", "parent_rejected"),
		slog.String("transaction_id", transactionID),
		slog.String("parent_id", parentID),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

type correlationIDKey struct{}

// WithCorrelationID returns a copy of ctx whose aggregation log events carry id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID, or ""
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}
