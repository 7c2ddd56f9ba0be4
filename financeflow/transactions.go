package financeflow

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TransactionQuery narrows a transaction listing. Zero values are omitted
// from the query string.
type TransactionQuery struct {
	WalletID      string
	CategoryID    string
	SubcategoryID string
	Type          TransactionType
	From          time.Time
	To            time.Time
	Limit         int
	Offset        int
}

func (q TransactionQuery) values() url.Values {
	params := url.Values{}
	if q.WalletID != "" {
		params.Set("walletId", q.WalletID)
	}
	if q.CategoryID != "" {
		params.Set("categoryId", q.CategoryID)
	}
	if q.SubcategoryID != "" {
		params.Set("subcategoryId", q.SubcategoryID)
	}
	if q.Type != "" {
		params.Set("type", string(q.Type))
	}
	if !q.From.IsZero() {
		params.Set("from", q.From.Format("2006-01-02"))
	}
	if !q.To.IsZero() {
		params.Set("to", q.To.Format("2006-01-02"))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	return params
}

// ListTransactions retrieves transactions matching the query.
func (c *Client) ListTransactions(ctx context.Context, query TransactionQuery) ([]Transaction, error) {
	var envelope struct {
		Transactions []Transaction `json:"transactions"`
	}
	req := apiRequest{method: http.MethodGet, path: epTransactions, query: query.values(), out: &envelope}
	if err := c.do(ctx, req); err != nil {
		return nil, err
	}
	c.logger.Debug().Int("count", len(envelope.Transactions)).Msg("Retrieved transactions")
	return envelope.Transactions, nil
}

// GetTransaction retrieves a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	var envelope struct {
		Transaction Transaction `json:"transaction"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epTransaction(id), out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Transaction, nil
}

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, input TransactionInput) (*Transaction, error) {
	var envelope struct {
		Transaction Transaction `json:"transaction"`
	}
	req := apiRequest{method: http.MethodPost, path: epTransactions, body: input, out: &envelope}
	if err := c.do(ctx, req); err != nil {
		return nil, err
	}
	c.logger.Info().
		Str("transaction_id", envelope.Transaction.ID).
		Str("description", input.Description).
		Msg("Created transaction")
	return &envelope.Transaction, nil
}

// UpdateTransaction replaces the fields of an existing transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, input TransactionInput) (*Transaction, error) {
	var envelope struct {
		Transaction Transaction `json:"transaction"`
	}
	req := apiRequest{method: http.MethodPut, path: epTransaction(id), body: input, out: &envelope}
	if err := c.do(ctx, req); err != nil {
		return nil, err
	}
	return &envelope.Transaction, nil
}

// DeleteTransaction removes a transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	if err := c.do(ctx, apiRequest{method: http.MethodDelete, path: epTransaction(id)}); err != nil {
		return err
	}
	c.logger.Info().Str("transaction_id", id).Msg("Deleted transaction")
	return nil
}

// GetTransactionTypes returns the transaction types the backend accepts.
func (c *Client) GetTransactionTypes(ctx context.Context) ([]string, error) {
	var envelope struct {
		Types []string `json:"types"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epTransactionTypes, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Types, nil
}

// GetTransactionFrequencies returns the recurrence frequencies the backend
// accepts for repeated transactions.
func (c *Client) GetTransactionFrequencies(ctx context.Context) ([]string, error) {
	var envelope struct {
		Frequencies []string `json:"frequencies"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epTransactionFrequencies, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Frequencies, nil
}

// ListRepeatedTransactions retrieves all recurring transaction templates.
func (c *Client) ListRepeatedTransactions(ctx context.Context) ([]RepeatedTransaction, error) {
	var envelope struct {
		Transactions []RepeatedTransaction `json:"transactions"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epRepeatedTransactions, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Transactions, nil
}

// DeleteRepeatedTransaction removes a recurring transaction template.
func (c *Client) DeleteRepeatedTransaction(ctx context.Context, id string) error {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: epRepeatedTransaction(id)})
}
