package financeflow

import (
	"context"
	"fmt"
	"net/http"
)

// GetYearReport retrieves category totals for a whole year.
func (c *Client) GetYearReport(ctx context.Context, year int) (*Report, error) {
	return c.getReport(ctx, year, 0)
}

// GetMonthReport retrieves category totals for one month.
func (c *Client) GetMonthReport(ctx context.Context, year, month int) (*Report, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month: %d", month)
	}
	return c.getReport(ctx, year, month)
}

func (c *Client) getReport(ctx context.Context, year, month int) (*Report, error) {
	var envelope struct {
		Report Report `json:"report"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epReport(year, month), out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Report, nil
}
