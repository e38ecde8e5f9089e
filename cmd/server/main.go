// Command server runs the planner HTTP API.
//
// Configuration comes from config.yaml (CONFIG_PATH), .env and the
// environment; see internal/config. SIGINT or SIGTERM starts a graceful
// shutdown.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata" // NOTIFY_TIMEZONE must resolve in minimal containers

	"github.com/heartmarshall/planner-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
