package financeflow

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactionsQuery(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, epTransactions, r.URL.Path)
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"transactions": []map[string]any{
				{"id": "tx1", "description": "Groceries", "amount": "42.50", "type": "expense"},
			},
		})
	}, WithToken("tok"))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	txs, err := client.ListTransactions(context.Background(), TransactionQuery{
		WalletID: "w1",
		Type:     TransactionExpense,
		From:     from,
		Limit:    25,
	})
	require.NoError(t, err)
	require.Len(t, txs, 1)

	assert.Equal(t, "tx1", txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, []string{"w1"}, gotQuery["walletId"])
	assert.Equal(t, []string{"expense"}, gotQuery["type"])
	assert.Equal(t, []string{"2026-01-01"}, gotQuery["from"])
	assert.Equal(t, []string{"25"}, gotQuery["limit"])
	assert.NotContains(t, gotQuery, "categoryId")
	assert.NotContains(t, gotQuery, "offset")
}

func TestCreateTransactionUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var input TransactionInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "Coffee", input.Description)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"transaction": map[string]any{
				"id":          "tx9",
				"description": input.Description,
				"amount":      "3.80",
				"type":        "expense",
			},
		})
	}, WithToken("tok"))

	tx, err := client.CreateTransaction(context.Background(), TransactionInput{
		Description: "Coffee",
		Amount:      decimal.RequireFromString("3.80"),
		Type:        TransactionExpense,
		WalletID:    "w1",
		CategoryID:  "c1",
		Date:        time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "tx9", tx.ID)
	assert.Equal(t, "Coffee", tx.Description)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, epTransaction("missing"), r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Transaction not found"}`))
	}, WithToken("tok"))

	err := client.DeleteTransaction(context.Background(), "missing")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "Transaction not found", apiErr.Message)
}

func TestGetTransactionFrequencies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, epTransactionFrequencies, r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"frequencies": []string{"daily", "weekly", "monthly", "yearly"},
		})
	}, WithToken("tok"))

	freqs, err := client.GetTransactionFrequencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"daily", "weekly", "monthly", "yearly"}, freqs)
}
