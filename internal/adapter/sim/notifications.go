package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/userdash-backend/internal/domain"
	"github.com/heartmarshall/userdash-backend/internal/provider"
)

// NotificationsProvider serves generated user notifications with simulated
// latency.
type NotificationsProvider struct {
	sim *simulator
	log *slog.Logger
}

// NewNotificationsProvider creates a NotificationsProvider with the default
// simulation profile.
func NewNotificationsProvider(logger *slog.Logger) *NotificationsProvider {
	return NewNotificationsProviderWithConfig(DefaultConfig(), logger)
}

// NewNotificationsProviderWithConfig creates a NotificationsProvider with a
// custom simulation profile (for testing and demos).
func NewNotificationsProviderWithConfig(cfg Config, logger *slog.Logger) *NotificationsProvider {
	return &NotificationsProvider{
		sim: newSimulator(cfg),
		log: logger.With("adapter", "sim_notifications"),
	}
}

// FetchNotifications returns the notifications of the given user after a
// simulated I/O wait, alternating read and unread items. Injected failures
// wrap ErrNotificationsNoConnection or ErrNotificationsUnauthorized.
func (p *NotificationsProvider) FetchNotifications(ctx context.Context, userID int64) ([]domain.NotificationItem, error) {
	p.log.DebugContext(ctx, "notifications request", slog.Int64("user_id", userID))

	if err := p.sim.delay(ctx); err != nil {
		return nil, fmt.Errorf("sim notifications: %w", err)
	}
	if err := p.sim.fail(provider.ErrNotificationsNoConnection, provider.ErrNotificationsUnauthorized); err != nil {
		p.log.DebugContext(ctx, "notifications failure injected",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("sim notifications: %w", err)
	}

	n := int(userID%4) + 2
	items := make([]domain.NotificationItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, domain.NotificationItem{
			ID:      userID*100 + int64(i),
			Message: fmt.Sprintf("Notification %d for user %d", i, userID),
			IsRead:  i%2 == 0,
		})
	}
	return items, nil
}
