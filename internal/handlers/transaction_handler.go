package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"transaction-tree/internal/dto"
	apierrors "transaction-tree/internal/errors"
	"transaction-tree/internal/models"
	"transaction-tree/internal/repositories"
	"transaction-tree/internal/services"
	"transaction-tree/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	aggregator         services.SubtreeAggregatorInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	aggregator services.SubtreeAggregatorInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		aggregator:         aggregator,
	}
}

// ListTransactions returns every transaction that has not been soft-deleted
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.transactionService.ListTransactions(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// CreateTransaction stores a new transaction, optionally under a parent
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	req, errorResponse := bindTransactionRequest(c)
	if errorResponse != nil {
		return sendResponse(c, errorResponse)
	}

	parentID := req.ParentIDValue()
	transaction, err := h.transactionService.CreateTransaction(
		c.Request().Context(),
		parentID,
		models.TransactionType(req.Type),
		*req.Amount,
	)
	if err != nil {
		return sendTransactionError(c, err, parentID)
	}

	return c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Message:     "New transaction is created",
		Transaction: dto.NewTransactionResponse(transaction),
	})
}

// GetTransaction returns one transaction, including soft-deleted ones
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transaction, err := h.transactionService.GetTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return sendTransactionError(c, err, nil)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction replaces parent, type and amount of a transaction
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	req, errorResponse := bindTransactionRequest(c)
	if errorResponse != nil {
		return sendResponse(c, errorResponse)
	}

	parentID := req.ParentIDValue()
	updated, err := h.transactionService.UpdateTransaction(
		c.Request().Context(),
		c.Param("id"),
		parentID,
		models.TransactionType(req.Type),
		*req.Amount,
	)
	if err != nil {
		return sendTransactionError(c, err, parentID)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("%d Transaction details updated", updated),
	})
}

// DeleteTransaction soft-deletes a transaction
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	if err := h.transactionService.DeleteTransaction(c.Request().Context(), c.Param("id")); err != nil {
		return sendTransactionError(c, err, nil)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// ListByType returns the ids of live transactions of one type
// @Router /types/{type} [get]
func (h *TransactionHandler) ListByType(c echo.Context) error {
	transactionType := c.Param("type")

	ids, err := h.transactionService.ListTransactionIDsByType(c.Request().Context(), models.TransactionType(transactionType))
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransactionType) {
			return sendInvalidType(c, transactionType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTypeIDListResponse(ids))
}

// GetSum returns the inclusive subtree sum rooted at id. Unknown ids sum to zero.
// @Router /sum/{id} [get]
func (h *TransactionHandler) GetSum(c echo.Context) error {
	sum, err := h.aggregator.SumSubtree(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return SendError(c, apierrors.SystemTimeout)
		}
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSumResponse(sum))
}

// bindTransactionRequest decodes and validates a request body. A non-nil
// error response must be sent as is.
func bindTransactionRequest(c echo.Context) (*dto.TransactionRequest, *apierrors.ErrorResponse) {
	traceID := getTraceID(c)

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return nil, apierrors.NewErrorResponse(apierrors.ValidationGeneral, traceID,
			apierrors.WithDetails("Invalid request body"))
	}

	err := c.Validate(&req)
	if err == nil {
		return &req, nil
	}

	fieldErrors, ok := validation.FieldErrors(err)
	switch {
	case !ok:
		return nil, apierrors.NewErrorResponse(apierrors.ValidationGeneral, traceID,
			apierrors.WithDetails(err.Error()))
	case validation.FailedTag(err, "type", "transaction_type"):
		return nil, invalidTypeResponse(req.Type, traceID)
	case validation.FailedTag(err, "amount", "amount_scale"):
		return nil, apierrors.NewErrorResponse(apierrors.TransactionInvalidAmount, traceID,
			apierrors.WithFieldDetail("amount", fieldErrors["amount"]))
	default:
		return nil, apierrors.NewValidationError(fieldErrors, traceID)
	}
}

func invalidTypeResponse(transactionType, traceID string) *apierrors.ErrorResponse {
	types := models.TransactionTypes()
	choices := make([]string, 0, len(types))
	for _, t := range types {
		choices = append(choices, string(t))
	}
	return apierrors.NewInvalidChoiceError(transactionType, choices, traceID)
}

func sendInvalidType(c echo.Context, transactionType string) error {
	return sendResponse(c, invalidTypeResponse(transactionType, getTraceID(c)))
}

// sendTransactionError maps service errors onto API error codes
func sendTransactionError(c echo.Context, err error, parentID *string) error {
	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, services.ErrParentNotFound):
		return sendResponse(c, apierrors.NewInvalidParentError(derefString(parentID), getTraceID(c)))
	case errors.Is(err, services.ErrCyclicParent):
		return sendResponse(c, apierrors.NewCyclicParentError(derefString(parentID), getTraceID(c)))
	case errors.Is(err, models.ErrAlreadyDeleted):
		return SendError(c, apierrors.TransactionAlreadyDeleted)
	case errors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, apierrors.TransactionInvalidType)
	case errors.Is(err, models.ErrInvalidAmountScale), errors.Is(err, models.ErrAmountTooLarge):
		return SendError(c, apierrors.TransactionInvalidAmount, apierrors.WithFieldDetail("amount", err.Error()))
	case errors.Is(err, context.DeadlineExceeded):
		return SendError(c, apierrors.SystemTimeout)
	default:
		return SendSystemError(c, err)
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
