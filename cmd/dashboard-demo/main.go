// Command dashboard-demo loads one user dashboard through the sim providers
// and prints the aggregate as a human-readable report. It exercises the full
// concurrent fan-out without any HTTP layer.
//
// Flags:
//
//	--user       user ID to load (default 1)
//	--fail-rate  per-provider failure probability in [0, 1) (default 0)
//	--seed       random seed for reproducible runs (0 = clock)
//	--timeout    overall deadline for the load (default 5s)
//
// Exit codes: 0 = dashboard loaded, 1 = load failed.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/userdash-backend/internal/adapter/sim"
	"github.com/heartmarshall/userdash-backend/internal/service/dashboard"
)

func main() {
	userID := flag.Int64("user", 1, "user ID to load")
	failRate := flag.Float64("fail-rate", 0, "per-provider failure probability in [0, 1)")
	seed := flag.Int64("seed", 0, "random seed for reproducible runs (0 = clock)")
	timeout := flag.Duration("timeout", 5*time.Second, "overall deadline for the load")
	flag.Parse()

	if *failRate < 0 || *failRate >= 1 {
		fmt.Fprintln(os.Stderr, "Usage: dashboard-demo --fail-rate must be in [0, 1)")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := sim.DefaultConfig()
	cfg.FailureRate = *failRate
	cfg.Seed = *seed

	svc := dashboard.NewService(
		logger,
		sim.NewProfileProviderWithConfig(cfg, logger),
		sim.NewPostsProviderWithConfig(cfg, logger),
		sim.NewNotificationsProviderWithConfig(cfg, logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	data, err := svc.Load(ctx, *userID)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		fmt.Fprintf(os.Stderr, "dashboard load failed after %s: %v\n", elapsed, err)
		os.Exit(1)
	}

	metrics := data.Metrics()

	fmt.Printf("Dashboard for user %d (loaded in %s)\n", *userID, elapsed)
	fmt.Printf("\nProfile:\n")
	fmt.Printf("  #%d %s <%s>\n", data.Profile.ID, data.Profile.Name, data.Profile.Email)

	fmt.Printf("\nPosts (%d):\n", metrics.PostsCount)
	for _, p := range data.Posts {
		fmt.Printf("  #%d %s: %s\n", p.ID, p.Title, p.Content)
	}

	fmt.Printf("\nNotifications (%d, %d unread):\n",
		metrics.TotalNotificationsCount, metrics.UnreadNotificationsCount)
	for _, n := range data.Notifications {
		state := "unread"
		if n.IsRead {
			state = "read"
		}
		fmt.Printf("  #%d [%s] %s\n", n.ID, state, n.Message)
	}
}
