package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.AuthEnabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be > 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Providers.validate(); err != nil {
		return fmt.Errorf("providers: %w", err)
	}

	return nil
}

func (p *ProvidersConfig) validate() error {
	switch p.Mode {
	case ModeSim:
		if p.SimMinDelay < 0 {
			return fmt.Errorf("sim_min_delay must be >= 0 (got %v)", p.SimMinDelay)
		}
		if p.SimMaxDelay < p.SimMinDelay {
			return fmt.Errorf("sim_max_delay must be >= sim_min_delay (got %v < %v)", p.SimMaxDelay, p.SimMinDelay)
		}
		if p.SimFailureRate < 0 || p.SimFailureRate >= 1 {
			return fmt.Errorf("sim_failure_rate must be in [0, 1) (got %v)", p.SimFailureRate)
		}
	case ModeHTTP:
		if p.ProfileURL == "" || p.PostsURL == "" || p.NotificationsURL == "" {
			return fmt.Errorf("http mode requires profile_url, posts_url and notifications_url")
		}
	default:
		return fmt.Errorf("unknown mode %q (want %q or %q)", p.Mode, ModeSim, ModeHTTP)
	}

	return nil
}
