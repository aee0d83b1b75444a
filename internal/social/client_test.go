package social

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

func newTestClient(t *testing.T, feedURL string) *Client {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	return NewClient(&config.SocialConfig{FeedURL: feedURL}, logger)
}

func TestClient_RecentPosts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "post-1",
					"message": "Find us in Peoria this Friday!",
					"permalink_url": "https://example.com/post-1",
					"full_picture": "https://example.com/post-1.jpg",
					"created_time": "2025-04-28T12:00:00+0000"
				},
				{
					"id": "post-2",
					"message": "New menu drop."
				}
			]
		}`))
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream.URL)

	posts, err := client.RecentPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "post-1", posts[0].ID)
	assert.Equal(t, "Find us in Peoria this Friday!", posts[0].Message)
	assert.Equal(t, "https://example.com/post-1.jpg", posts[0].ImageURL)
	assert.Equal(t, "post-2", posts[1].ID)
}

func TestClient_RecentPosts_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	client := newTestClient(t, upstream.URL)

	_, err := client.RecentPosts(context.Background())
	assert.Error(t, err)
}

func TestClient_RecentPosts_NotConfigured(t *testing.T) {
	client := newTestClient(t, "")

	_, err := client.RecentPosts(context.Background())
	assert.Error(t, err)
}
