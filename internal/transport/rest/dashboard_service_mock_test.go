package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/userdash-backend/internal/domain"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	LoadFunc func(ctx context.Context, userID int64) (*domain.DashboardData, error)

	calls struct {
		Load []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lockLoad sync.RWMutex
}

func (mock *dashboardServiceMock) Load(ctx context.Context, userID int64) (*domain.DashboardData, error) {
	if mock.LoadFunc == nil {
		panic("dashboardServiceMock.LoadFunc: method is nil but dashboardService.Load was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, userID)
}

func (mock *dashboardServiceMock) LoadCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}
