package coachapi

import (
	"context"
	"net/http"
)

func (c *Client) GetTrainingGoal(ctx context.Context, userID string) (*TrainingGoal, error) {
	var goal TrainingGoal
	if err := c.get(ctx, "/api/training/goal", userQuery(userID), &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

type setGoalRequest struct {
	UserID string       `json:"user_id"`
	Goal   TrainingGoal `json:"goal"`
}

func (c *Client) SetTrainingGoal(ctx context.Context, userID string, goal TrainingGoal) error {
	req := setGoalRequest{UserID: userID, Goal: goal}
	return c.do(ctx, http.MethodPut, "/api/training/goal", nil, req, nil)
}

func (c *Client) DeleteTrainingGoal(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/training/goal", userQuery(userID), nil, nil)
}

func (c *Client) GetTrainingPlan(ctx context.Context, userID, lang string) (*TrainingPlan, error) {
	var plan TrainingPlan
	if err := c.get(ctx, "/api/training/plan", userLangQuery(userID, lang), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// RefreshTrainingPlan asks the backend to regenerate the plan from the
// current goal and recent load, and returns the fresh plan.
func (c *Client) RefreshTrainingPlan(ctx context.Context, userID, lang string) (*TrainingPlan, error) {
	var plan TrainingPlan
	if err := c.do(ctx, http.MethodPost, "/api/training/plan/refresh", userLangQuery(userID, lang), nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) GetGuidance(ctx context.Context, userID, lang string) (*Guidance, error) {
	var guidance Guidance
	if err := c.get(ctx, "/api/coach/guidance", userLangQuery(userID, lang), &guidance); err != nil {
		return nil, err
	}
	return &guidance, nil
}

func (c *Client) GetWeeklyDigest(ctx context.Context, userID, lang string) (*Digest, error) {
	var digest Digest
	if err := c.get(ctx, "/api/coach/digest", userLangQuery(userID, lang), &digest); err != nil {
		return nil, err
	}
	return &digest, nil
}
