package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/userdash-backend/internal/domain"
)

var _ profileProvider = &profileProviderMock{}

type profileProviderMock struct {
	FetchProfileFunc func(ctx context.Context, userID int64) (*domain.UserProfile, error)

	calls struct {
		FetchProfile []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockFetchProfile sync.RWMutex
}

func (mock *profileProviderMock) FetchProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	if mock.FetchProfileFunc == nil {
		panic("profileProviderMock.FetchProfileFunc: method is nil but profileProvider.FetchProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockFetchProfile.Lock()
	mock.calls.FetchProfile = append(mock.calls.FetchProfile, callInfo)
	mock.lockFetchProfile.Unlock()
	return mock.FetchProfileFunc(ctx, userID)
}

func (mock *profileProviderMock) FetchProfileCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockFetchProfile.RLock()
	calls := mock.calls.FetchProfile
	mock.lockFetchProfile.RUnlock()
	return calls
}
