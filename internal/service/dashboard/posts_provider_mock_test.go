package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/userdash-backend/internal/domain"
)

var _ postsProvider = &postsProviderMock{}

type postsProviderMock struct {
	FetchPostsFunc func(ctx context.Context, userID int64) ([]domain.Post, error)

	calls struct {
		FetchPosts []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockFetchPosts sync.RWMutex
}

func (mock *postsProviderMock) FetchPosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	if mock.FetchPostsFunc == nil {
		panic("postsProviderMock.FetchPostsFunc: method is nil but postsProvider.FetchPosts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockFetchPosts.Lock()
	mock.calls.FetchPosts = append(mock.calls.FetchPosts, callInfo)
	mock.lockFetchPosts.Unlock()
	return mock.FetchPostsFunc(ctx, userID)
}

func (mock *postsProviderMock) FetchPostsCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockFetchPosts.RLock()
	calls := mock.calls.FetchPosts
	mock.lockFetchPosts.RUnlock()
	return calls
}
