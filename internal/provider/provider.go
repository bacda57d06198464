package provider

import (
	"context"

	"github.com/heartmarshall/userdash-backend/internal/domain"
)

// ProfileProvider fetches the profile of a single user.
//
// On failure the returned error wraps exactly one of ErrProfileNotFound or
// ErrProfileTimeout.
type ProfileProvider interface {
	FetchProfile(ctx context.Context, userID int64) (*domain.UserProfile, error)
}

// PostsProvider fetches all posts authored by a single user. A user with no
// posts yields an empty slice, not an error.
//
// On failure the returned error wraps exactly one of ErrPostsNetwork or
// ErrPostsInvalidResponse.
type PostsProvider interface {
	FetchPosts(ctx context.Context, userID int64) ([]domain.Post, error)
}

// NotificationsProvider fetches all notifications addressed to a single user,
// read and unread alike.
//
// On failure the returned error wraps exactly one of
// ErrNotificationsNoConnection or ErrNotificationsUnauthorized.
type NotificationsProvider interface {
	FetchNotifications(ctx context.Context, userID int64) ([]domain.NotificationItem, error)
}
