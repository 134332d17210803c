// Command server runs the study platform HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// see internal/config. SIGINT/SIGTERM trigger graceful shutdown.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/avoronov/certprep-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
