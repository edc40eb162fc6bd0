// Command server runs the CycleCare HTTP API and the daily reminder job.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml), a .env
// file and the environment. SIGINT/SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/cyclecare-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
