package config

import (
	"time"
)

// Provider modes selectable via ProvidersConfig.Mode.
const (
	ModeSim  = "sim"
	ModeHTTP = "http"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string        `yaml:"host"                  env:"SERVER_HOST"                  env-default:"0.0.0.0"`
	Port               int           `yaml:"port"                  env:"SERVER_PORT"                  env-default:"8080"`
	ReadTimeout        time.Duration `yaml:"read_timeout"          env:"SERVER_READ_TIMEOUT"          env-default:"10s"`
	WriteTimeout       time.Duration `yaml:"write_timeout"         env:"SERVER_WRITE_TIMEOUT"         env-default:"30s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"          env:"SERVER_IDLE_TIMEOUT"          env-default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"      env:"SERVER_SHUTDOWN_TIMEOUT"      env-default:"10s"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// ProvidersConfig selects and tunes the dashboard data sources. Sim mode
// serves generated data in-process; http mode talks to the three upstream
// services.
type ProvidersConfig struct {
	Mode string `yaml:"mode" env:"PROVIDERS_MODE" env-default:"sim"`

	SimMinDelay    time.Duration `yaml:"sim_min_delay"    env:"PROVIDERS_SIM_MIN_DELAY"    env-default:"40ms"`
	SimMaxDelay    time.Duration `yaml:"sim_max_delay"    env:"PROVIDERS_SIM_MAX_DELAY"    env-default:"260ms"`
	SimFailureRate float64       `yaml:"sim_failure_rate" env:"PROVIDERS_SIM_FAILURE_RATE" env-default:"0.15"`
	SimSeed        int64         `yaml:"sim_seed"         env:"PROVIDERS_SIM_SEED"         env-default:"0"`

	ProfileURL       string `yaml:"profile_url"       env:"PROVIDERS_PROFILE_URL"`
	PostsURL         string `yaml:"posts_url"         env:"PROVIDERS_POSTS_URL"`
	NotificationsURL string `yaml:"notifications_url" env:"PROVIDERS_NOTIFICATIONS_URL"`
}

// AuthConfig holds access token validation settings. An empty JWTSecret
// leaves the API open, without authentication.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"userdash"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TelemetryConfig holds metrics endpoint settings.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled" env:"TELEMETRY_ENABLED" env-default:"true"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// AuthEnabled reports whether a JWT secret is configured and bearer tokens
// must therefore be validated.
func (c AuthConfig) AuthEnabled() bool {
	return c.JWTSecret != ""
}
