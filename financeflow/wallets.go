package financeflow

import (
	"context"
	"net/http"
)

// ListWallets retrieves all wallets belonging to the authenticated user.
func (c *Client) ListWallets(ctx context.Context) ([]Wallet, error) {
	var envelope struct {
		Wallets []Wallet `json:"wallets"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epWallets, out: &envelope}); err != nil {
		return nil, err
	}
	c.logger.Debug().Int("count", len(envelope.Wallets)).Msg("Retrieved wallets")
	return envelope.Wallets, nil
}

// GetWallet retrieves a single wallet by id.
func (c *Client) GetWallet(ctx context.Context, id string) (*Wallet, error) {
	var envelope struct {
		Wallet Wallet `json:"wallet"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epWallet(id), out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Wallet, nil
}

// CreateWallet creates a new wallet.
func (c *Client) CreateWallet(ctx context.Context, input WalletInput) (*Wallet, error) {
	var envelope struct {
		Wallet Wallet `json:"wallet"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epWallets, body: input, out: &envelope}); err != nil {
		return nil, err
	}
	c.logger.Info().Str("wallet_id", envelope.Wallet.ID).Str("name", input.Name).Msg("Created wallet")
	return &envelope.Wallet, nil
}

// UpdateWallet replaces the fields of an existing wallet.
func (c *Client) UpdateWallet(ctx context.Context, id string, input WalletInput) (*Wallet, error) {
	var envelope struct {
		Wallet Wallet `json:"wallet"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPut, path: epWallet(id), body: input, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Wallet, nil
}

// DeleteWallet removes a wallet. The backend rejects deletion of wallets that
// still hold transactions.
func (c *Client) DeleteWallet(ctx context.Context, id string) error {
	if err := c.do(ctx, apiRequest{method: http.MethodDelete, path: epWallet(id)}); err != nil {
		return err
	}
	c.logger.Info().Str("wallet_id", id).Msg("Deleted wallet")
	return nil
}

// GetWalletTypes returns the wallet types the backend accepts.
func (c *Client) GetWalletTypes(ctx context.Context) ([]string, error) {
	var envelope struct {
		Types []string `json:"types"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epWalletTypes, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Types, nil
}
