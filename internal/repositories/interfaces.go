package repositories

import (
	"context"
	"iter"

	"transaction-tree/internal/models"
)

// TreeReader is the read contract the subtree aggregator walks.
// Get returns ErrTransactionNotFound for unknown ids. ChildrenOf streams the direct
// children of id lazily; the sequence is finite, unordered and meant to be ranged once.
type TreeReader interface {
	Get(ctx context.Context, id string) (*models.Transaction, error)
	ChildrenOf(ctx context.Context, id string) iter.Seq2[*models.Transaction, error]
}

// ClosureReader can fetch a whole subtree with one recursive query
type ClosureReader interface {
	TreeReader
	SubtreeClosure(ctx context.Context, rootID string) iter.Seq2[*models.Transaction, error]
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	ClosureReader

	Create(ctx context.Context, transaction *models.Transaction) error
	ParentExists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]models.Transaction, error)
	ListIDsByType(ctx context.Context, transactionType models.TransactionType) ([]string, error)
	Update(ctx context.Context, transaction *models.Transaction) (int64, error)
	MarkDeleted(ctx context.Context, id string) (bool, error)
}
