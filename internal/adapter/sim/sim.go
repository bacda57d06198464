// Package sim implements the dashboard data providers as in-process
// simulators with randomized latency and injectable failures.
package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Config controls the latency and failure behaviour of the sim providers.
type Config struct {
	// MinDelay and MaxDelay bound the random per-call latency.
	MinDelay time.Duration
	MaxDelay time.Duration
	// FailureRate is the probability in [0, 1) that a call fails with one
	// of the provider's error kinds.
	FailureRate float64
	// Seed fixes the random sequence. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the latency and failure profile used in production
// wiring: 40-260ms per call, 15% failure rate, clock-seeded randomness.
func DefaultConfig() Config {
	return Config{
		MinDelay:    40 * time.Millisecond,
		MaxDelay:    260 * time.Millisecond,
		FailureRate: 0.15,
	}
}

// simulator produces the latency and failure decisions for one provider.
// Safe for concurrent use.
type simulator struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand
}

func newSimulator(cfg Config) *simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &simulator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// delay blocks for a random duration within the configured bounds, or until
// ctx is cancelled.
func (s *simulator) delay(ctx context.Context) error {
	d := s.cfg.MinDelay
	if span := s.cfg.MaxDelay - s.cfg.MinDelay; span > 0 {
		s.mu.Lock()
		d += time.Duration(s.rng.Int63n(int64(span) + 1))
		s.mu.Unlock()
	}
	if d < 0 {
		d = 0
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// fail decides whether the current call fails and picks one of the two error
// kinds of the owning provider. Returns nil when the call should succeed.
func (s *simulator) fail(kindA, kindB error) error {
	if s.cfg.FailureRate <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rng.Float64() >= s.cfg.FailureRate {
		return nil
	}
	if s.rng.Intn(2) == 0 {
		return kindA
	}
	return kindB
}
