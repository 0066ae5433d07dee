package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TransactionType is the closed set of transaction categories
type TransactionType string

const (
	TransactionTypeShopping  TransactionType = "shopping"
	TransactionTypeFuel      TransactionType = "fuel"
	TransactionTypeHouseHold TransactionType = "house_hold"
)

const (
	// AmountScale is the number of fractional digits kept for amounts
	AmountScale = 2
	// AmountMaxDigits is the total number of digits an amount may carry
	AmountMaxDigits = 20
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmountScale     = errors.New("transaction amount must have at most 2 decimal places")
	ErrAmountTooLarge         = errors.New("transaction amount exceeds 20 digits")
	ErrSelfParent             = errors.New("transaction cannot be its own parent")
	ErrAlreadyDeleted         = errors.New("object does not exist, it has already been soft-deleted")
)

// Amount is a decimal(20,2) money value. sqlite gives decimal columns NUMERIC
// affinity, which keeps 15 significant digits, so there it is stored as TEXT.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// GormDBDataType picks the column type per dialect
func (Amount) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return "decimal(20,2)"
}

// Transaction is a node of the transaction forest. ParentID nil marks a root.
type Transaction struct {
	ID         string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	ParentID   *string         `gorm:"type:varchar(36);index" json:"parent_id"`
	Type       TransactionType `gorm:"type:varchar(50);not null;index" json:"type"`
	Amount     Amount          `gorm:"not null" json:"amount"`
	IsDeleted  bool            `gorm:"not null;default:false" json:"is_deleted"`
	CreatedOn  time.Time       `gorm:"not null" json:"created_on"`
	ModifiedOn time.Time       `gorm:"not null" json:"modified_on"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	now := time.Now()
	if t.CreatedOn.IsZero() {
		t.CreatedOn = now
	}
	if t.ModifiedOn.IsZero() {
		t.ModifiedOn = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.ModifiedOn = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(string(t.Type)) {
		return ErrInvalidTransactionType
	}

	if err := ValidateAmount(t.Amount.Decimal); err != nil {
		return err
	}

	if t.ParentID != nil && t.ID != "" && *t.ParentID == t.ID {
		return ErrSelfParent
	}

	return nil
}

// IsRoot reports whether the transaction has no parent
func (t *Transaction) IsRoot() bool {
	return t.ParentID == nil
}

// SoftDelete flags the transaction as deleted. It fails if the flag is already set.
func (t *Transaction) SoftDelete() error {
	if t.IsDeleted {
		return ErrAlreadyDeleted
	}
	t.IsDeleted = true
	t.ModifiedOn = time.Now()
	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeShopping, TransactionTypeFuel, TransactionTypeHouseHold:
		return true
	default:
		return false
	}
}

// TransactionTypes lists every accepted transaction type
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeShopping, TransactionTypeFuel, TransactionTypeHouseHold}
}

// ValidateAmount checks the decimal(20,2) bounds of an amount
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(AmountScale)) {
		return ErrInvalidAmountScale
	}

	integerDigits := len(amount.Abs().Truncate(0).String())
	if integerDigits > AmountMaxDigits-AmountScale {
		return ErrAmountTooLarge
	}

	return nil
}

// StringPtr returns a pointer to s, or nil for an empty string
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
