// Command server runs the user dashboard aggregation API.
//
// Configuration is read from the file named by CONFIG_PATH (default
// ./config.yaml), with environment variable overrides. The server shuts
// down gracefully on SIGINT or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = startup or serve error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/userdash-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
