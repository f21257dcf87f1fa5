package user

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/s21platform/forum-service/internal/config"
	"github.com/s21platform/forum-service/internal/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Users.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Users.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type lookupRequest struct {
	Usernames []string `json:"usernames"`
}

type lookupResponse struct {
	Users []model.UserInfo `json:"users"`
}

// GetUsersByUsernames resolves usernames to platform identities in one
// round trip. The match is exact and case-sensitive; unknown usernames
// are silently absent from the result.
func (c *Client) GetUsersByUsernames(ctx context.Context, usernames []string) ([]model.UserInfo, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	jsonData, err := json.Marshal(lookupRequest{Usernames: usernames})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/users/lookup", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return response.Users, nil
}
