package financeflow

import (
	"context"
	"net/http"
)

// ListCurrencies retrieves the currencies the backend supports. The endpoint
// requires no authentication.
func (c *Client) ListCurrencies(ctx context.Context) ([]Currency, error) {
	var envelope struct {
		Currencies []Currency `json:"currencies"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epCurrencies, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Currencies, nil
}
