package financeflow

import (
	"context"
	"net/http"
)

// ListBudgets retrieves all budgets.
func (c *Client) ListBudgets(ctx context.Context) ([]Budget, error) {
	var envelope struct {
		Budgets []Budget `json:"budgets"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epBudgets, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Budgets, nil
}

// GetBudget retrieves a single budget by id.
func (c *Client) GetBudget(ctx context.Context, id string) (*Budget, error) {
	var envelope struct {
		Budget Budget `json:"budget"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epBudget(id), out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Budget, nil
}

// CreateBudget creates a new budget.
func (c *Client) CreateBudget(ctx context.Context, input BudgetInput) (*Budget, error) {
	var envelope struct {
		Budget Budget `json:"budget"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epBudgets, body: input, out: &envelope}); err != nil {
		return nil, err
	}
	c.logger.Info().Str("budget_id", envelope.Budget.ID).Str("name", input.Name).Msg("Created budget")
	return &envelope.Budget, nil
}

// UpdateBudget replaces the fields of an existing budget.
func (c *Client) UpdateBudget(ctx context.Context, id string, input BudgetInput) (*Budget, error) {
	var envelope struct {
		Budget Budget `json:"budget"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPut, path: epBudget(id), body: input, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Budget, nil
}

// DeleteBudget removes a budget.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: epBudget(id)})
}
