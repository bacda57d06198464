package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/userdash-backend/internal/domain"
	"github.com/heartmarshall/userdash-backend/internal/provider"
)

// ProfileClient fetches user profiles from the profile service.
type ProfileClient struct {
	client
}

// NewProfileClient creates a ProfileClient talking to the profile service at
// baseURL.
func NewProfileClient(baseURL string, logger *slog.Logger) *ProfileClient {
	return &ProfileClient{client: newClient(baseURL, "httpapi_profile", logger)}
}

// FetchProfile fetches the profile of the given user. A 404 maps onto
// ErrProfileNotFound; timeouts and all other upstream failures map onto
// ErrProfileTimeout.
func (c *ProfileClient) FetchProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	var dto profileResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d/profile", userID), &dto); err != nil {
		if code, ok := statusOf(err); ok && code == http.StatusNotFound {
			return nil, fmt.Errorf("httpapi profile: %w", provider.ErrProfileNotFound)
		}
		c.log.ErrorContext(ctx, "profile fetch failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("httpapi profile: %w: %v", provider.ErrProfileTimeout, err)
	}

	return &domain.UserProfile{ID: dto.ID, Name: dto.Name, Email: dto.Email}, nil
}
