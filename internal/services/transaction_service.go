package services

import (
	"context"
	"errors"
	"fmt"

	"transaction-tree/internal/models"
	"transaction-tree/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrParentNotFound = errors.New("parent transaction does not exist")
	ErrCyclicParent   = errors.New("transaction cannot be moved under itself or one of its descendants")
)

type TransactionService struct {
	repo       repositories.TransactionRepositoryInterface
	aggregator SubtreeAggregatorInterface
	metrics    MetricsRecorderInterface
	logger     AggregationLoggerInterface
}

func NewTransactionService(
	repo repositories.TransactionRepositoryInterface,
	aggregator SubtreeAggregatorInterface,
	metrics MetricsRecorderInterface,
	logger AggregationLoggerInterface,
) TransactionServiceInterface {
	return &TransactionService{
		repo:       repo,
		aggregator: aggregator,
		metrics:    metrics,
		logger:     logger,
	}
}

// CreateTransaction stores a new transaction. A non-nil parentID must name a live transaction.
func (s *TransactionService) CreateTransaction(ctx context.Context, parentID *string, transactionType models.TransactionType, amount decimal.Decimal) (*models.Transaction, error) {
	transaction := &models.Transaction{
		ParentID: parentID,
		Type:     transactionType,
		Amount:   models.NewAmount(amount),
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if !transaction.IsRoot() {
		if err := s.checkParentExists(ctx, "", *parentID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("transaction.created", map[string]string{
		"type": string(transactionType),
	})

	return transaction, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return s.repo.Get(ctx, id)
}

func (s *TransactionService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.repo.List(ctx)
}

func (s *TransactionService) ListTransactionIDsByType(ctx context.Context, transactionType models.TransactionType) ([]string, error) {
	if !models.IsValidTransactionType(string(transactionType)) {
		return nil, models.ErrInvalidTransactionType
	}

	ids, err := s.repo.ListIDsByType(ctx, transactionType)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordGauge("transactions.by_type", float64(len(ids)), map[string]string{
		"type": string(transactionType),
	})

	return ids, nil
}

// UpdateTransaction replaces parent, type and amount of an existing transaction and returns
// the number of rows changed. Re-parenting under the transaction's own subtree is rejected.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, parentID *string, transactionType models.TransactionType, amount decimal.Decimal) (int64, error) {
	transaction, err := s.repo.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	transaction.ParentID = parentID
	transaction.Type = transactionType
	transaction.Amount = models.NewAmount(amount)

	if err := transaction.Validate(); err != nil {
		if errors.Is(err, models.ErrSelfParent) {
			s.rejectParent(ctx, id, *parentID, "cycle")
			return 0, ErrCyclicParent
		}
		return 0, err
	}

	if parentID != nil {
		if err := s.checkParentExists(ctx, id, *parentID); err != nil {
			return 0, err
		}

		cyclic, err := s.aggregator.IsInSubtree(ctx, id, *parentID)
		if err != nil {
			return 0, fmt.Errorf("failed to check parent ancestry: %w", err)
		}
		if cyclic {
			s.rejectParent(ctx, id, *parentID, "cycle")
			return 0, ErrCyclicParent
		}
	}

	updated, err := s.repo.Update(ctx, transaction)
	if err != nil {
		return 0, err
	}

	s.metrics.IncrementCounter("transaction.updated", map[string]string{
		"type": string(transactionType),
	})

	return updated, nil
}

// DeleteTransaction soft-deletes a transaction. Deleting it a second time fails with models.ErrAlreadyDeleted.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	transaction, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := transaction.SoftDelete(); err != nil {
		return err
	}

	deleted, err := s.repo.MarkDeleted(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.ErrAlreadyDeleted
	}

	s.metrics.IncrementCounter("transaction.deleted", map[string]string{
		"type": string(transaction.Type),
	})

	return nil
}

func (s *TransactionService) checkParentExists(ctx context.Context, id, parentID string) error {
	exists, err := s.repo.ParentExists(ctx, parentID)
	if err != nil {
		return err
	}
	if !exists {
		s.rejectParent(ctx, id, parentID, "not_found")
		return ErrParentNotFound
	}
	return nil
}

func (s *TransactionService) rejectParent(ctx context.Context, id, parentID, reason string) {
	s.metrics.IncrementCounter("transaction.parent_rejected", map[string]string{
		"reason": reason,
	})
	s.logger.LogParentRejected(ctx, id, parentID, reason)
}
