package lukaz

import (
	"context"
	"fmt"
	"net/http"
)

// ===================================================================
// Sessions and users
// ===================================================================

// CreateGuest starts a guest session for a new, unauthenticated user.
func (c *Client) CreateGuest(ctx context.Context) (*Session, error) {
	var session Session
	if err := c.doRequest(ctx, http.MethodPost, "/startSession/", nil, &session); err != nil {
		return nil, fmt.Errorf("failed to create guest session: %w", err)
	}

	return &session, nil
}

// GetUser retrieves the user the API key belongs to.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.doRequest(ctx, http.MethodGet, "/user/", nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
