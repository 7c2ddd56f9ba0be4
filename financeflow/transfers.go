package financeflow

import (
	"context"
	"net/http"
)

// ListTransfers retrieves all transfers between the user's wallets.
func (c *Client) ListTransfers(ctx context.Context) ([]Transfer, error) {
	var envelope struct {
		Transfers []Transfer `json:"transfers"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epTransfers, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Transfers, nil
}

// CreateTransfer moves money from one wallet to another.
func (c *Client) CreateTransfer(ctx context.Context, input TransferInput) (*Transfer, error) {
	var envelope struct {
		Transfer Transfer `json:"transfer"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epTransfers, body: input, out: &envelope}); err != nil {
		return nil, err
	}
	c.logger.Info().
		Str("transfer_id", envelope.Transfer.ID).
		Str("from", input.FromWalletID).
		Str("to", input.ToWalletID).
		Msg("Created transfer")
	return &envelope.Transfer, nil
}

// DeleteTransfer removes a transfer and reverses its balance effect.
func (c *Client) DeleteTransfer(ctx context.Context, id string) error {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: epTransfer(id)})
}
