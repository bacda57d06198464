package httpapi_test

import (
	"github.com/heartmarshall/userdash-backend/internal/adapter/httpapi"
	"github.com/heartmarshall/userdash-backend/internal/provider"
)

// Compile-time check: the API clients must satisfy the provider contracts.
var (
	_ provider.ProfileProvider       = (*httpapi.ProfileClient)(nil)
	_ provider.PostsProvider         = (*httpapi.PostsClient)(nil)
	_ provider.NotificationsProvider = (*httpapi.NotificationsClient)(nil)
)
