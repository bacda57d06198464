package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/userdash-backend/internal/domain"
	"github.com/heartmarshall/userdash-backend/internal/telemetry"
)

// Load fetches the profile, posts and notifications of the given user in
// parallel and joins them into one aggregate.
//
// All three fetches fail or succeed together: the first failure to settle
// cancels the remaining fetches and becomes the returned error, with its
// provider error kind intact. Results from the other fetches are discarded;
// no partial aggregate is ever returned.
func (s *Service) Load(ctx context.Context, userID int64) (*domain.DashboardData, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("user_id", "must be positive")
	}

	s.log.DebugContext(ctx, "dashboard load started", slog.Int64("user_id", userID))
	start := time.Now()

	var (
		profile       *domain.UserProfile
		posts         []domain.Post
		notifications []domain.NotificationItem
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		profile, err = s.profiles.FetchProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		posts, err = s.posts.FetchPosts(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch posts: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		notifications, err = s.notifications.FetchNotifications(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch notifications: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		elapsed := time.Since(start)
		telemetry.ObserveDashboardLoad(telemetry.OutcomeFailure, elapsed)
		s.log.ErrorContext(ctx, "dashboard load failed",
			slog.Int64("user_id", userID),
			slog.String("elapsed", elapsed.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	data := &domain.DashboardData{
		Profile:       *profile,
		Posts:         posts,
		Notifications: notifications,
	}

	elapsed := time.Since(start)
	telemetry.ObserveDashboardLoad(telemetry.OutcomeSuccess, elapsed)

	metrics := data.Metrics()
	s.log.InfoContext(ctx, "dashboard load finished",
		slog.Int64("user_id", userID),
		slog.String("elapsed", elapsed.String()),
		slog.Int("posts", metrics.PostsCount),
		slog.Int("unread_notifications", metrics.UnreadNotificationsCount),
		slog.Int("total_notifications", metrics.TotalNotificationsCount))

	return data, nil
}
