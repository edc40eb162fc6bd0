// Command remind runs the daily reminder pass once. It is used to backfill
// a day the in-process scheduler missed, or to drive reminders from an
// external cron when reminder.enabled is false.
//
// Usage:
//
//	remind [--date=2024-03-27]
//
// Without --date the current day in reminder.timezone is used.
package main

import (
	"context"
	"flag"
	"fmt"
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
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/reminder"
)

func main() {
	date := flag.String("date", "", "day to generate reminders for (YYYY-MM-DD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	day := domain.Today(time.Now(), cfg.Reminder.Location)
	if *date != "" {
		if day, err = domain.ParseDate(*date); err != nil {
			fmt.Fprintln(os.Stderr, "Usage: remind [--date=YYYY-MM-DD]")
			os.Exit(1)
		}
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

	created, err := svc.RunFor(ctx, day)
	if err != nil {
		logger.Error("reminder run failed",
			slog.String("date", domain.FormatDate(day)),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	fmt.Printf("Created %d reminder(s) for %s.\n", created, domain.FormatDate(day))
}
