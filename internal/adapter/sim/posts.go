package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/userdash-backend/internal/domain"
	"github.com/heartmarshall/userdash-backend/internal/provider"
)

// PostsProvider serves generated user posts with simulated latency.
type PostsProvider struct {
	sim *simulator
	log *slog.Logger
}

// NewPostsProvider creates a PostsProvider with the default simulation
// profile.
func NewPostsProvider(logger *slog.Logger) *PostsProvider {
	return NewPostsProviderWithConfig(DefaultConfig(), logger)
}

// NewPostsProviderWithConfig creates a PostsProvider with a custom simulation
// profile (for testing and demos).
func NewPostsProviderWithConfig(cfg Config, logger *slog.Logger) *PostsProvider {
	return &PostsProvider{
		sim: newSimulator(cfg),
		log: logger.With("adapter", "sim_posts"),
	}
}

// FetchPosts returns the posts of the given user after a simulated I/O wait.
// The set is derived from the user ID, so repeated calls agree. Injected
// failures wrap ErrPostsNetwork or ErrPostsInvalidResponse.
func (p *PostsProvider) FetchPosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	p.log.DebugContext(ctx, "posts request", slog.Int64("user_id", userID))

	if err := p.sim.delay(ctx); err != nil {
		return nil, fmt.Errorf("sim posts: %w", err)
	}
	if err := p.sim.fail(provider.ErrPostsNetwork, provider.ErrPostsInvalidResponse); err != nil {
		p.log.DebugContext(ctx, "posts failure injected",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("sim posts: %w", err)
	}

	n := int(userID%3) + 1
	posts := make([]domain.Post, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, domain.Post{
			ID:      userID*100 + int64(i),
			Title:   fmt.Sprintf("Post %d", i),
			Content: fmt.Sprintf("Body of post %d by user %d", i, userID),
		})
	}
	return posts, nil
}
