// Package functions calls the backend's hosted functions. The feed uses the
// community-posts function as a fallback data source when the primary store
// query comes back empty or failing.
package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"vitalfit/wellness-app/internal/config"
	"vitalfit/wellness-app/internal/domain"
)

const communityPostsFunction = "community-posts"

// Client defines the remote procedures this layer consumes.
type Client interface {
	// ListPosts invokes the community-posts function with {action: "list"}
	// and returns the raw post rows it responds with.
	ListPosts(ctx context.Context) ([]domain.PostRow, error)
}

// httpClient implements Client against the functions HTTP endpoint.
type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient creates a functions client from configuration.
func NewHTTPClient(cfg config.FunctionsConfig) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// listRequest is the payload of the list action.
type listRequest struct {
	Action string `json:"action"`
}

// postPayload mirrors the row shape the community-posts function returns.
// Note the function reports likes as likes_count, unlike the primary store.
type postPayload struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Content    string          `json:"content"`
	ImageURL   string          `json:"image_url"`
	LikesCount int             `json:"likes_count"`
	CreatedAt  time.Time       `json:"created_at"`
	Profiles   *profilePayload `json:"profiles"`
}

type profilePayload struct {
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

func (c *httpClient) ListPosts(ctx context.Context) ([]domain.PostRow, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("functions base URL is not configured")
	}

	body, err := json.Marshal(listRequest{Action: "list"})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/" + communityPostsFunction
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("community-posts list returned status %d", resp.StatusCode)
	}

	var payloads []postPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("decode community-posts response: %w", err)
	}

	rows := make([]domain.PostRow, 0, len(payloads))
	for _, p := range payloads {
		row := domain.PostRow{
			ID:        p.ID,
			UserID:    p.UserID,
			Content:   p.Content,
			ImageURL:  p.ImageURL,
			Likes:     p.LikesCount,
			CreatedAt: p.CreatedAt,
		}
		if p.Profiles != nil {
			row.Profile = &domain.ProfileRow{
				FullName:  p.Profiles.FullName,
				Username:  p.Profiles.Username,
				AvatarURL: p.Profiles.AvatarURL,
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
