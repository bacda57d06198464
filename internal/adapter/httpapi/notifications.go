package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/userdash-backend/internal/domain"
	"github.com/heartmarshall/userdash-backend/internal/provider"
)

// NotificationsClient fetches user notifications from the notifications
// service.
type NotificationsClient struct {
	client
}

// NewNotificationsClient creates a NotificationsClient talking to the
// notifications service at baseURL.
func NewNotificationsClient(baseURL string, logger *slog.Logger) *NotificationsClient {
	return &NotificationsClient{client: newClient(baseURL, "httpapi_notifications", logger)}
}

// FetchNotifications fetches all notifications of the given user. A 401 or
// 403 maps onto ErrNotificationsUnauthorized; transport failures and all
// other upstream errors map onto ErrNotificationsNoConnection.
func (c *NotificationsClient) FetchNotifications(ctx context.Context, userID int64) ([]domain.NotificationItem, error) {
	var dtos []notificationResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d/notifications", userID), &dtos); err != nil {
		kind := provider.ErrNotificationsNoConnection
		if code, ok := statusOf(err); ok && (code == http.StatusUnauthorized || code == http.StatusForbidden) {
			kind = provider.ErrNotificationsUnauthorized
		}
		c.log.ErrorContext(ctx, "notifications fetch failed",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("httpapi notifications: %w: %v", kind, err)
	}

	items := make([]domain.NotificationItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, domain.NotificationItem{ID: dto.ID, Message: dto.Message, IsRead: dto.IsRead})
	}
	return items, nil
}
