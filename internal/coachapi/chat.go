package coachapi

import (
	"context"
	"net/http"
)

func (c *Client) ChatHistory(ctx context.Context, userID string) ([]ChatMessage, error) {
	var history struct {
		Messages []ChatMessage `json:"messages"`
	}
	if err := c.get(ctx, "/api/chat/history", userQuery(userID), &history); err != nil {
		return nil, err
	}
	return history.Messages, nil
}

type sendMessageRequest struct {
	UserID  string `json:"user_id"`
	Content string `json:"content"`
	Lang    string `json:"lang,omitempty"`
}

// SendChatMessage submits one user message and returns the coach's reply.
func (c *Client) SendChatMessage(ctx context.Context, userID, lang, content string) (*ChatMessage, error) {
	var reply ChatMessage
	req := sendMessageRequest{UserID: userID, Content: content, Lang: lang}
	if err := c.do(ctx, http.MethodPost, "/api/chat/message", nil, req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) ClearChatHistory(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/api/chat/history", userQuery(userID), nil, nil)
}
