package dto

import (
	"encoding/json"
	"testing"
	"time"

	"transaction-tree/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumResponse_MarshalsAsNumber(t *testing.T) {
	testCases := []struct {
		name     string
		sum      decimal.Decimal
		expected string
	}{
		{"zero", decimal.Zero, `{"sum":0.00}`},
		{"integer", decimal.NewFromInt(600), `{"sum":600.00}`},
		{"fraction", decimal.RequireFromString("40.55"), `{"sum":40.55}`},
		{"negative", decimal.RequireFromString("-12.5"), `{"sum":-12.50}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, err := json.Marshal(NewSumResponse(tc.sum))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(body))
		})
	}
}

func TestTransactionRequest_AcceptsNumberAndString(t *testing.T) {
	var fromNumber, fromString TransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"type":"fuel","amount":10.25}`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`{"type":"fuel","amount":"10.25"}`), &fromString))

	require.NotNil(t, fromNumber.Amount)
	require.NotNil(t, fromString.Amount)
	assert.True(t, fromNumber.Amount.Equal(*fromString.Amount))
	assert.Nil(t, fromNumber.ParentIDValue())
}

func TestTransactionRequest_ParentIDValue(t *testing.T) {
	empty := ""
	parent := "abc"

	assert.Nil(t, (&TransactionRequest{ParentID: &empty}).ParentIDValue())
	assert.Equal(t, "abc", *(&TransactionRequest{ParentID: &parent}).ParentIDValue())
}

func TestNewTransactionResponse(t *testing.T) {
	now := time.Now()
	parent := "p"
	tx := &models.Transaction{
		ID:         "c",
		ParentID:   &parent,
		Type:       models.TransactionTypeShopping,
		Amount:     models.NewAmount(decimal.NewFromInt(5)),
		CreatedOn:  now,
		ModifiedOn: now,
	}

	resp := NewTransactionResponse(tx)

	assert.Equal(t, "c", resp.ID)
	assert.Equal(t, "p", *resp.ParentID)
	assert.Equal(t, "shopping", resp.Type)
	assert.False(t, resp.IsDeleted)
	assert.Equal(t, "5.00", resp.Amount)
}

func TestNewTransactionResponse_AmountFixedToTwoPlaces(t *testing.T) {
	for stored, want := range map[string]string{
		"200":                   "200.00",
		"-5.5":                  "-5.50",
		"0":                     "0.00",
		"123456789012345678.91": "123456789012345678.91",
	} {
		tx := &models.Transaction{Amount: models.NewAmount(decimal.RequireFromString(stored))}

		body, err := json.Marshal(NewTransactionResponse(tx))
		require.NoError(t, err)
		assert.Contains(t, string(body), `"amount":"`+want+`"`, stored)
	}
}

func TestListResponses_NeverNil(t *testing.T) {
	body, err := json.Marshal(NewTransactionListResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	body, err = json.Marshal(NewTypeIDListResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	ids := NewTypeIDListResponse([]string{"a", "b"})
	assert.Equal(t, []TypeIDResponse{{ID: "a"}, {ID: "b"}}, ids)
}
