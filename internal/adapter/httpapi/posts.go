package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/userdash-backend/internal/domain"
	"github.com/heartmarshall/userdash-backend/internal/provider"
)

// PostsClient fetches user posts from the posts service.
type PostsClient struct {
	client
}

// NewPostsClient creates a PostsClient talking to the posts service at
// baseURL.
func NewPostsClient(baseURL string, logger *slog.Logger) *PostsClient {
	return &PostsClient{client: newClient(baseURL, "httpapi_posts", logger)}
}

// FetchPosts fetches all posts of the given user. Payloads that cannot be
// parsed map onto ErrPostsInvalidResponse; transport failures and unexpected
// statuses map onto ErrPostsNetwork.
func (c *PostsClient) FetchPosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	var dtos []postResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d/posts", userID), &dtos); err != nil {
		kind := provider.ErrPostsNetwork
		if errors.Is(err, errDecode) {
			kind = provider.ErrPostsInvalidResponse
		}
		c.log.ErrorContext(ctx, "posts fetch failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("httpapi posts: %w: %v", kind, err)
	}

	posts := make([]domain.Post, 0, len(dtos))
	for _, dto := range dtos {
		posts = append(posts, domain.Post{ID: dto.ID, Title: dto.Title, Content: dto.Content})
	}
	return posts, nil
}
