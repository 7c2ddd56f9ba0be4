package financeflow

import (
	"context"
	"net/http"
)

// LoginResult is the token plus profile returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Currency string `json:"currency"`
}

// Login authenticates with email and password. On success the client's token
// is updated so subsequent calls are authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epLogin, body: body, out: &result}); err != nil {
		return nil, err
	}
	c.token = result.Token
	c.logger.Debug().Str("email", email).Msg("Logged in")
	return &result, nil
}

// Logout invalidates the current token server-side and clears it locally.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epLogout}); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Register creates a new account. The account must verify its email before
// logging in.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*User, error) {
	var envelope struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epRegister, body: input, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.User, nil
}

// VerifyEmail confirms an email address using the token from the
// verification mail.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	body := map[string]string{"token": token}
	return c.do(ctx, apiRequest{method: http.MethodPost, path: epVerifyEmail, body: body})
}

// ResendVerification requests a fresh verification mail for the address.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, apiRequest{method: http.MethodPost, path: epResendVerification, body: body})
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	if c.token == "" {
		return nil, ErrNotAuthenticated
	}
	var envelope struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epProfile, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.User, nil
}
