package sim_test

import (
	"github.com/heartmarshall/userdash-backend/internal/adapter/sim"
	"github.com/heartmarshall/userdash-backend/internal/provider"
)

// Compile-time check: the sim providers must satisfy the provider contracts.
var (
	_ provider.ProfileProvider       = (*sim.ProfileProvider)(nil)
	_ provider.PostsProvider         = (*sim.PostsProvider)(nil)
	_ provider.NotificationsProvider = (*sim.NotificationsProvider)(nil)
)
