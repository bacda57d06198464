package dashboard

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/userdash-backend/internal/adapter/sim"
	"github.com/heartmarshall/userdash-backend/internal/domain"
)

// profileProvider defines the profile source needed by the dashboard service.
type profileProvider interface {
	FetchProfile(ctx context.Context, userID int64) (*domain.UserProfile, error)
}

// postsProvider defines the posts source needed by the dashboard service.
type postsProvider interface {
	FetchPosts(ctx context.Context, userID int64) ([]domain.Post, error)
}

// notificationsProvider defines the notifications source needed by the
// dashboard service.
type notificationsProvider interface {
	FetchNotifications(ctx context.Context, userID int64) ([]domain.NotificationItem, error)
}

// Service aggregates the three dashboard data sources for a user.
type Service struct {
	log           *slog.Logger
	profiles      profileProvider
	posts         postsProvider
	notifications notificationsProvider
}

// NewService creates a new dashboard service instance. Providers passed as
// nil fall back to the sim implementations with their default profile.
func NewService(
	logger *slog.Logger,
	profiles profileProvider,
	posts postsProvider,
	notifications notificationsProvider,
) *Service {
	if profiles == nil {
		profiles = sim.NewProfileProvider(logger)
	}
	if posts == nil {
		posts = sim.NewPostsProvider(logger)
	}
	if notifications == nil {
		notifications = sim.NewNotificationsProvider(logger)
	}

	return &Service{
		log:           logger.With("service", "dashboard"),
		profiles:      profiles,
		posts:         posts,
		notifications: notifications,
	}
}
