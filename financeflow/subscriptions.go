package financeflow

import (
	"context"
	"net/http"
)

// CreateCheckoutSession asks the backend to open a hosted checkout session
// for the premium plan and returns its URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, plan string) (*BillingSession, error) {
	var envelope struct {
		Session BillingSession `json:"session"`
	}
	body := map[string]string{"plan": plan}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epCheckoutSession, body: body, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Session, nil
}

// CreatePortalSession asks the backend to open a hosted billing portal
// session for the authenticated user and returns its URL.
func (c *Client) CreatePortalSession(ctx context.Context) (*BillingSession, error) {
	var envelope struct {
		Session BillingSession `json:"session"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epPortalSession, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Session, nil
}
