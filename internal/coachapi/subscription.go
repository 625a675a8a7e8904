package coachapi

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) SubscriptionStatus(ctx context.Context, userID string) (*SubscriptionStatus, error) {
	var status SubscriptionStatus
	if err := c.get(ctx, "/api/subscription/status", userQuery(userID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

type createCheckoutRequest struct {
	UserID string `json:"user_id"`
	Tier   string `json:"tier"`
}

// CreateCheckout opens a payment session for the given tier at the
// payment provider, via the backend. The returned CheckoutURL is where
// the browser gets redirected to.
func (c *Client) CreateCheckout(ctx context.Context, userID, tier string) (*CheckoutSession, error) {
	var session CheckoutSession
	req := createCheckoutRequest{UserID: userID, Tier: tier}
	if err := c.do(ctx, http.MethodPost, "/api/subscription/checkout", nil, req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) CheckoutStatus(ctx context.Context, userID, sessionID string) (*CheckoutStatus, error) {
	var status CheckoutStatus
	path := fmt.Sprintf("/api/subscription/checkout/%s/status", sessionID)
	if err := c.get(ctx, path, userQuery(userID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}
