package services

import (
	"context"
	"time"

	"transaction-tree/internal/models"

	"github.com/shopspring/decimal"
)

// SubtreeAggregatorInterface computes inclusive subtree sums over the transaction forest
type SubtreeAggregatorInterface interface {
	// SumSubtree returns the sum of the root and all of its descendants. An unknown root sums to zero.
	SumSubtree(ctx context.Context, rootID string) (decimal.Decimal, error)

	// IsInSubtree reports whether candidateID is rootID or one of its descendants
	IsInSubtree(ctx context.Context, rootID, candidateID string) (bool, error)

	// Strategy names the traversal in use
	Strategy() string
}

// TransactionServiceInterface defines transaction-related business operations
type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, parentID *string, transactionType models.TransactionType, amount decimal.Decimal) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListTransactionIDsByType(ctx context.Context, transactionType models.TransactionType) ([]string, error)
	UpdateTransaction(ctx context.Context, id string, parentID *string, transactionType models.TransactionType, amount decimal.Decimal) (int64, error)
	DeleteTransaction(ctx context.Context, id string) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// AggregationLoggerInterface emits structured events for subtree traversals
type AggregationLoggerInterface interface {
	LogAggregationStarted(ctx context.Context, rootID, strategy string)
	LogAggregationCompleted(ctx context.Context, rootID, strategy string, nodesVisited int, sum decimal.Decimal, durationMs int64)
	LogAggregationFailed(ctx context.Context, rootID, strategy string, errorMsg string, durationMs int64)
	LogCycleDetected(ctx context.Context, rootID, nodeID string)
	LogParentRejected(ctx context.Context, transactionID, parentID, reason string)
}
