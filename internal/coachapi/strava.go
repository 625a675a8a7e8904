package coachapi

import (
	"context"
	"net/http"
)

// StravaConnect starts the backend-managed Strava OAuth flow. The
// gateway only forwards the returned authorize URL; tokens never pass
// through here.
func (c *Client) StartStravaConnect(ctx context.Context, userID string) (*StravaConnect, error) {
	var connect StravaConnect
	if err := c.do(ctx, http.MethodPost, "/api/strava/connect", userQuery(userID), nil, &connect); err != nil {
		return nil, err
	}
	return &connect, nil
}

func (c *Client) GetStravaStatus(ctx context.Context, userID string) (*StravaStatus, error) {
	var status StravaStatus
	if err := c.get(ctx, "/api/strava/status", userQuery(userID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// TriggerStravaSync asks the backend to pull new activities now.
func (c *Client) TriggerStravaSync(ctx context.Context, userID string) (*SyncResult, error) {
	var result SyncResult
	if err := c.do(ctx, http.MethodPost, "/api/strava/sync", userQuery(userID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DisconnectStrava(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/strava/connection", userQuery(userID), nil, nil)
}
