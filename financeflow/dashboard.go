package financeflow

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// recentTransactionCount limits how many transactions an overview pulls in.
const recentTransactionCount = 10

// Overview bundles everything the dashboard renders in one value.
type Overview struct {
	Summary DashboardSummary
	Wallets []Wallet
	Recent  []Transaction
	Budgets []Budget
}

// GetDashboardSummary retrieves the headline dashboard numbers.
func (c *Client) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var envelope struct {
		Summary DashboardSummary `json:"summary"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epDashboard, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Summary, nil
}

// GetOverview fetches the dashboard summary, wallets, recent transactions and
// budgets in parallel. The first error cancels the remaining fetches.
// Each call is independent; the client imposes no ordering between them.
func (c *Client) GetOverview(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := c.GetDashboardSummary(ctx)
		if err != nil {
			return err
		}
		overview.Summary = *summary
		return nil
	})

	g.Go(func() error {
		wallets, err := c.ListWallets(ctx)
		if err != nil {
			return err
		}
		overview.Wallets = wallets
		return nil
	})

	g.Go(func() error {
		recent, err := c.ListTransactions(ctx, TransactionQuery{Limit: recentTransactionCount})
		if err != nil {
			return err
		}
		overview.Recent = recent
		return nil
	})

	g.Go(func() error {
		budgets, err := c.ListBudgets(ctx)
		if err != nil {
			return err
		}
		overview.Budgets = budgets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("wallets", len(overview.Wallets)).
		Int("recent", len(overview.Recent)).
		Int("budgets", len(overview.Budgets)).
		Msg("Fetched dashboard overview")
	return &overview, nil
}
