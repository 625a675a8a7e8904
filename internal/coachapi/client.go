// Package coachapi is the typed client for the CardioCoach backend REST
// API. The backend owns all business logic and persistence; this client
// only moves JSON back and forth and surfaces backend errors as APIError.
package coachapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// APIError is a non-2xx backend response: the HTTP status plus the
// human-readable detail field the backend puts in its error bodies.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("coach api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("coach api: status %d: %s", e.StatusCode, e.Detail)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// NewClient creates a coach backend client. If httpClient is nil,
// http.DefaultClient is used; pass an otelhttp-instrumented client to get
// upstream calls traced.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, v)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, v interface{},
) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	log.Tracef("coach api: %s %s", method, reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("coach api request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read coach api response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// the backend encodes errors as {"detail": "..."}; anything else
		// is left as a bare status error
		if err := json.Unmarshal(respBytes, apiErr); err != nil {
			log.Debugf("coach api: undecodable error body for %s: %s", path, err)
		}
		return apiErr
	}

	if v == nil || len(respBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBytes, v); err != nil {
		return fmt.Errorf("unmarshal coach api response: %w", err)
	}
	return nil
}

func userQuery(userID string) url.Values {
	q := url.Values{}
	q.Set("user", userID)
	return q
}

func userLangQuery(userID, lang string) url.Values {
	q := userQuery(userID)
	if lang != "" {
		q.Set("lang", lang)
	}
	return q
}
