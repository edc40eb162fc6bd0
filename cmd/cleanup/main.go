// Command cleanup deletes read notifications older than the configured
// retention period (reminder.retention_days). It is intended to be invoked
// by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/period"
	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/cyclecare-backend/internal/app"
	"github.com/heartmarshall/cyclecare-backend/internal/config"
	"github.com/heartmarshall/cyclecare-backend/internal/service/reminder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := reminder.NewService(logger, period.New(pool), user.New(pool), notification.New(pool),
		cfg.Reminder, cfg.Cycle.DefaultLength)

	deleted, err := svc.Cleanup(ctx)
	if err != nil {
		logger.Error("notification cleanup failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.Reminder.RetentionDays),
		)
		os.Exit(1)
	}

	logger.Info("notification cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Int("retention_days", cfg.Reminder.RetentionDays),
	)
}
