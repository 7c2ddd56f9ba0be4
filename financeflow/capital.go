package financeflow

import (
	"context"
	"net/http"
)

// ListCapitalGroups retrieves the capital groups the user belongs to.
func (c *Client) ListCapitalGroups(ctx context.Context) ([]CapitalGroup, error) {
	var envelope struct {
		Groups []CapitalGroup `json:"groups"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epCapitalGroups, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Groups, nil
}

// GetCapitalGroup retrieves a single capital group with member balances.
func (c *Client) GetCapitalGroup(ctx context.Context, id string) (*CapitalGroup, error) {
	var envelope struct {
		Group CapitalGroup `json:"group"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epCapitalGroup(id), out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Group, nil
}

// CreateCapitalGroup creates a new shared capital group owned by the caller.
func (c *Client) CreateCapitalGroup(ctx context.Context, name string) (*CapitalGroup, error) {
	var envelope struct {
		Group CapitalGroup `json:"group"`
	}
	body := map[string]string{"name": name}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epCapitalGroups, body: body, out: &envelope}); err != nil {
		return nil, err
	}
	c.logger.Info().Str("group_id", envelope.Group.ID).Str("name", name).Msg("Created capital group")
	return &envelope.Group, nil
}

// DeleteCapitalGroup dissolves a capital group. Only the owner may do this.
func (c *Client) DeleteCapitalGroup(ctx context.Context, id string) error {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: epCapitalGroup(id)})
}

// InviteToCapitalGroup invites another user by email to join a group.
func (c *Client) InviteToCapitalGroup(ctx context.Context, groupID, email string) (*CapitalInvitation, error) {
	var envelope struct {
		Invitation CapitalInvitation `json:"invitation"`
	}
	body := map[string]string{"groupId": groupID, "email": email}
	if err := c.do(ctx, apiRequest{method: http.MethodPost, path: epCapitalInvitations, body: body, out: &envelope}); err != nil {
		return nil, err
	}
	return &envelope.Invitation, nil
}

// ListCapitalInvitations retrieves the caller's pending invitations.
func (c *Client) ListCapitalInvitations(ctx context.Context) ([]CapitalInvitation, error) {
	var envelope struct {
		Invitations []CapitalInvitation `json:"invitations"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epCapitalInvitations, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Invitations, nil
}

// AcceptCapitalInvitation joins the group the invitation was issued for.
func (c *Client) AcceptCapitalInvitation(ctx context.Context, invitationID string) error {
	return c.do(ctx, apiRequest{method: http.MethodPost, path: epCapitalInvitation(invitationID, "accept")})
}

// DeclineCapitalInvitation rejects a pending invitation.
func (c *Client) DeclineCapitalInvitation(ctx context.Context, invitationID string) error {
	return c.do(ctx, apiRequest{method: http.MethodPost, path: epCapitalInvitation(invitationID, "decline")})
}
