package dto

import (
	"encoding/json"
	"time"

	"transaction-tree/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionRequest is the body accepted by create and update
type TransactionRequest struct {
	ParentID *string          `json:"parent_id" validate:"omitempty,max=36"`
	Type     string           `json:"type" validate:"required,transaction_type"`
	Amount   *decimal.Decimal `json:"amount" validate:"required,amount_scale"`
}

// ParentIDValue normalises an empty parent id to nil so "" and null both mean root
func (r *TransactionRequest) ParentIDValue() *string {
	if r.ParentID == nil {
		return nil
	}
	return models.StringPtr(*r.ParentID)
}

// TransactionResponse represents a stored transaction. Amount is a string fixed to two places.
type TransactionResponse struct {
	ID         string    `json:"id"`
	ParentID   *string   `json:"parent_id"`
	Type       string    `json:"type"`
	Amount     string    `json:"amount"`
	IsDeleted  bool      `json:"is_deleted"`
	CreatedOn  time.Time `json:"created_on"`
	ModifiedOn time.Time `json:"modified_on"`
}

// NewTransactionResponse converts a model into its API representation
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		ParentID:   t.ParentID,
		Type:       string(t.Type),
		Amount:     t.Amount.StringFixed(models.AmountScale),
		IsDeleted:  t.IsDeleted,
		CreatedOn:  t.CreatedOn,
		ModifiedOn: t.ModifiedOn,
	}
}

// NewTransactionListResponse converts a slice of models, never returning nil
func NewTransactionListResponse(transactions []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		out = append(out, NewTransactionResponse(&transactions[i]))
	}
	return out
}

// CreateTransactionResponse is returned after a successful create
type CreateTransactionResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// TypeIDResponse is one entry of the by-type listing
type TypeIDResponse struct {
	ID string `json:"id"`
}

// NewTypeIDListResponse wraps ids, never returning nil
func NewTypeIDListResponse(ids []string) []TypeIDResponse {
	out := make([]TypeIDResponse, 0, len(ids))
	for _, id := range ids {
		out = append(out, TypeIDResponse{ID: id})
	}
	return out
}

// SumResponse is the subtree total. The sum is emitted as a bare JSON number with two decimals.
type SumResponse struct {
	Sum json.Number `json:"sum"`
}

// NewSumResponse formats a decimal sum
func NewSumResponse(sum decimal.Decimal) SumResponse {
	return SumResponse{Sum: json.Number(sum.StringFixed(models.AmountScale))}
}
