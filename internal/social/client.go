// Package social fetches recent posts from the configured content API so
// the site can render a feed without exposing upstream credentials.
package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

type Post struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Permalink string `json:"permalink"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
}

type Client struct {
	config     *config.SocialConfig
	log        *zap.Logger
	httpClient *http.Client
}

func NewClient(config *config.SocialConfig, log *zap.Logger) *Client {
	return &Client{
		config: config,
		log:    log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// feedResponse is the upstream wire shape.
type feedResponse struct {
	Data []struct {
		ID          string `json:"id"`
		Message     string `json:"message"`
		Permalink   string `json:"permalink_url"`
		FullPicture string `json:"full_picture"`
		CreatedTime string `json:"created_time"`
	} `json:"data"`
}

func (c *Client) RecentPosts(ctx context.Context) ([]Post, error) {
	if c.config.FeedURL == "" {
		return nil, fmt.Errorf("social feed url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch social feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("social feed returned status %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode social feed: %w", err)
	}

	posts := make([]Post, 0, len(feed.Data))
	for _, entry := range feed.Data {
		posts = append(posts, Post{
			ID:        entry.ID,
			Message:   entry.Message,
			Permalink: entry.Permalink,
			ImageURL:  entry.FullPicture,
			CreatedAt: entry.CreatedTime,
		})
	}

	return posts, nil
}
