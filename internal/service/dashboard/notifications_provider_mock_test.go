package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/userdash-backend/internal/domain"
)

var _ notificationsProvider = &notificationsProviderMock{}

type notificationsProviderMock struct {
	FetchNotificationsFunc func(ctx context.Context, userID int64) ([]domain.NotificationItem, error)

	calls struct {
		FetchNotifications []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockFetchNotifications sync.RWMutex
}

func (mock *notificationsProviderMock) FetchNotifications(ctx context.Context, userID int64) ([]domain.NotificationItem, error) {
	if mock.FetchNotificationsFunc == nil {
		panic("notificationsProviderMock.FetchNotificationsFunc: method is nil but notificationsProvider.FetchNotifications was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockFetchNotifications.Lock()
	mock.calls.FetchNotifications = append(mock.calls.FetchNotifications, callInfo)
	mock.lockFetchNotifications.Unlock()
	return mock.FetchNotificationsFunc(ctx, userID)
}

func (mock *notificationsProviderMock) FetchNotificationsCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockFetchNotifications.RLock()
	calls := mock.calls.FetchNotifications
	mock.lockFetchNotifications.RUnlock()
	return calls
}
