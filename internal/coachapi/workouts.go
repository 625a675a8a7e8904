package coachapi

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Client) ListWorkouts(ctx context.Context, userID string, page, size int) (*WorkoutsPage, error) {
	q := userQuery(userID)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var workoutsPage WorkoutsPage
	if err := c.get(ctx, "/api/workouts", q, &workoutsPage); err != nil {
		return nil, err
	}
	return &workoutsPage, nil
}

func (c *Client) GetWorkout(ctx context.Context, userID, workoutID string) (*Workout, error) {
	var workout Workout
	path := fmt.Sprintf("/api/workouts/%s", workoutID)
	if err := c.get(ctx, path, userQuery(userID), &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (c *Client) GetWorkoutAnalysis(ctx context.Context, userID, workoutID, lang string) (*WorkoutAnalysis, error) {
	var analysis WorkoutAnalysis
	path := fmt.Sprintf("/api/workouts/%s/analysis", workoutID)
	if err := c.get(ctx, path, userLangQuery(userID, lang), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *Client) GetStats(ctx context.Context, userID, period string) (*Stats, error) {
	q := userQuery(userID)
	if period != "" {
		q.Set("period", period)
	}

	var stats Stats
	if err := c.get(ctx, "/api/stats", q, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) GetVMAEstimate(ctx context.Context, userID string) (*VMAEstimate, error) {
	var estimate VMAEstimate
	if err := c.get(ctx, "/api/vma", userQuery(userID), &estimate); err != nil {
		return nil, err
	}
	return &estimate, nil
}

func (c *Client) GetDashboardInsight(ctx context.Context, userID, lang string) (*Insight, error) {
	var insight Insight
	if err := c.get(ctx, "/api/insight", userLangQuery(userID, lang), &insight); err != nil {
		return nil, err
	}
	return &insight, nil
}
