package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"time"

	"transaction-tree/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// subtreeClosureQuery walks parent_id edges downward from the root. UNION drops rows
// already produced, so the recursion stops on cyclic data.
const subtreeClosureQuery = `
WITH RECURSIVE subtree(id) AS (
	SELECT id FROM transactions WHERE id = ?
	UNION
	SELECT child.id FROM transactions child JOIN subtree ON child.parent_id = subtree.id
)
SELECT transactions.* FROM transactions JOIN subtree ON transactions.id = subtree.id`

// transactionRepository implements TransactionRepositoryInterface on gorm
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// Get retrieves a transaction by ID, soft-deleted or not
func (r *transactionRepository) Get(ctx context.Context, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// ChildrenOf streams the direct children of id from an open cursor
func (r *transactionRepository) ChildrenOf(ctx context.Context, id string) iter.Seq2[*models.Transaction, error] {
	return r.stream(func(db *gorm.DB) (*sql.Rows, error) {
		return db.WithContext(ctx).Model(&models.Transaction{}).Where("parent_id = ?", id).Rows()
	})
}

// SubtreeClosure streams the root and all of its descendants from a single recursive query
func (r *transactionRepository) SubtreeClosure(ctx context.Context, rootID string) iter.Seq2[*models.Transaction, error] {
	return r.stream(func(db *gorm.DB) (*sql.Rows, error) {
		return db.WithContext(ctx).Raw(subtreeClosureQuery, rootID).Rows()
	})
}

func (r *transactionRepository) stream(open func(db *gorm.DB) (*sql.Rows, error)) iter.Seq2[*models.Transaction, error] {
	return func(yield func(*models.Transaction, error) bool) {
		rows, err := open(r.db)
		if err != nil {
			yield(nil, fmt.Errorf("failed to query transactions: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var transaction models.Transaction
			if err := r.db.ScanRows(rows, &transaction); err != nil {
				yield(nil, fmt.Errorf("failed to scan transaction: %w", err))
				return
			}
			if !yield(&transaction, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("failed to read transactions: %w", err))
		}
	}
}

// ParentExists reports whether id names a transaction that can accept children
func (r *transactionRepository) ParentExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check parent transaction: %w", err)
	}
	return count > 0, nil
}

// List returns every transaction that is not soft-deleted
func (r *transactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_on ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// ListIDsByType returns the ids of non-deleted transactions of a type
func (r *transactionRepository) ListIDsByType(ctx context.Context, transactionType models.TransactionType) ([]string, error) {
	ids := []string{}
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("type = ? AND is_deleted = ?", transactionType, false).
		Order("created_on ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by type: %w", err)
	}
	return ids, nil
}

// Update overwrites parent, type and amount and returns the number of rows changed
func (r *transactionRepository) Update(ctx context.Context, transaction *models.Transaction) (int64, error) {
	result := r.db.WithContext(ctx).Model(transaction).
		Select("parent_id", "type", "amount", "modified_on").
		Updates(transaction)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// MarkDeleted sets is_deleted on a live transaction. It returns false when no live row matched.
func (r *transactionRepository) MarkDeleted(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND is_deleted = ?", id, false).
		UpdateColumns(map[string]interface{}{
			"is_deleted":  true,
			"modified_on": time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to soft-delete transaction: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
