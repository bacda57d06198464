package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/userdash-backend/internal/domain"
	"github.com/heartmarshall/userdash-backend/internal/provider"
)

// ProfileProvider serves generated user profiles with simulated latency.
type ProfileProvider struct {
	sim *simulator
	log *slog.Logger
}

// NewProfileProvider creates a ProfileProvider with the default simulation
// profile.
func NewProfileProvider(logger *slog.Logger) *ProfileProvider {
	return NewProfileProviderWithConfig(DefaultConfig(), logger)
}

// NewProfileProviderWithConfig creates a ProfileProvider with a custom
// simulation profile (for testing and demos).
func NewProfileProviderWithConfig(cfg Config, logger *slog.Logger) *ProfileProvider {
	return &ProfileProvider{
		sim: newSimulator(cfg),
		log: logger.With("adapter", "sim_profile"),
	}
}

// FetchProfile returns the profile for the given user after a simulated I/O
// wait. Injected failures wrap ErrProfileNotFound or ErrProfileTimeout.
func (p *ProfileProvider) FetchProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	p.log.DebugContext(ctx, "profile request", slog.Int64("user_id", userID))

	if err := p.sim.delay(ctx); err != nil {
		return nil, fmt.Errorf("sim profile: %w", err)
	}
	if err := p.sim.fail(provider.ErrProfileNotFound, provider.ErrProfileTimeout); err != nil {
		p.log.DebugContext(ctx, "profile failure injected",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("sim profile: %w", err)
	}

	return &domain.UserProfile{
		ID:    userID,
		Name:  fmt.Sprintf("User %d", userID),
		Email: fmt.Sprintf("user%d@example.com", userID),
	}, nil
}
