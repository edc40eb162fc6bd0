package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/activity"
	metricrepo "github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/healthmetric"
	notificationrepo "github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/notification"
	periodrepo "github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/period"
	sharingrepo "github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/sharing"
	symptomrepo "github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/symptom"
	userrepo "github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres/user"
	redisadapter "github.com/heartmarshall/cyclecare-backend/internal/adapter/redis"
	"github.com/heartmarshall/cyclecare-backend/internal/auth"
	"github.com/heartmarshall/cyclecare-backend/internal/config"
	authsvc "github.com/heartmarshall/cyclecare-backend/internal/service/auth"
	"github.com/heartmarshall/cyclecare-backend/internal/service/cycle"
	"github.com/heartmarshall/cyclecare-backend/internal/service/reminder"
	"github.com/heartmarshall/cyclecare-backend/internal/service/report"
	"github.com/heartmarshall/cyclecare-backend/internal/service/sharing"
	"github.com/heartmarshall/cyclecare-backend/internal/service/tracking"
	usersvc "github.com/heartmarshall/cyclecare-backend/internal/service/user"
	"github.com/heartmarshall/cyclecare-backend/internal/transport/middleware"
	"github.com/heartmarshall/cyclecare-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires the services, starts the
// reminder scheduler and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	// Repositories
	users := userrepo.New(pool)
	periods := periodrepo.New(pool)
	symptoms := symptomrepo.New(pool)
	activities := activityrepo.New(pool)
	metrics := metricrepo.New(pool)
	grants := sharingrepo.New(pool)
	notifications := notificationrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, cfg.Cycle)
	cycleService := cycle.NewService(logger, periods, users, tx, cfg.Cycle)
	trackingService := tracking.NewService(logger, symptoms, activities, metrics)
	reportService := report.NewService(logger, periods, symptoms, activities, users, cfg.Cycle)
	sharingService := sharing.NewService(logger, grants, users, sharing.Readers{
		Periods:    periods,
		Symptoms:   symptoms,
		Activities: activities,
		Metrics:    metrics,
	}, tx, cfg.Sharing)
	reminderService := reminder.NewService(logger, periods, users, notifications, cfg.Reminder, cfg.Cycle.DefaultLength)

	// Rate limiting and health components
	components := map[string]rest.Pinger{"database": pool}
	limiter, closeLimiter, err := newLimiter(ctx, cfg.Redis, logger, components)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer closeLimiter()

	// Reminders
	var scheduler *reminder.Scheduler
	if cfg.Reminder.Enabled {
		scheduler = reminder.NewScheduler(logger, reminderService, cfg.Reminder)
		if _, err := scheduler.ScheduleDaily(cfg.Reminder.Time); err != nil {
			return fmt.Errorf("app: schedule reminders: %w", err)
		}
		scheduler.Start()
		logger.Info("reminder scheduler started",
			slog.String("time", cfg.Reminder.Time),
			slog.String("timezone", cfg.Reminder.Timezone))
	}

	// HTTP
	handler := rest.NewRouter(rest.RouterConfig{
		Auth:          rest.NewAuthHandler(authService, userService, logger),
		Cycle:         rest.NewCycleHandler(cycleService, logger),
		Tracking:      rest.NewTrackingHandler(trackingService, logger),
		Report:        rest.NewReportHandler(reportService, logger),
		Sharing:       rest.NewSharingHandler(sharingService, logger),
		Notifications: rest.NewNotificationHandler(reminderService, logger),
		Health:        rest.NewHealthHandler(components, BuildVersion()),
		Middleware: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Timezone(),
		},
		Authenticate: middleware.Auth(authService),
		AuthLimit:    middleware.RateLimit(limiter, "auth", cfg.Redis.AuthPerMinute, middleware.ClientIP, logger),
		SharedLimit:  middleware.RateLimit(limiter, "shared", cfg.Redis.SharedLinksPerMinute, middleware.ClientIP, logger),
	})

	srv := newHTTPServer(ctx, cfg.Server, handler)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if scheduler != nil {
			scheduler.Stop(shutdownCtx)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// newHTTPServer builds the server. Request contexts keep ctx's values but
// not its cancellation, so a shutdown signal lets in-flight requests finish
// within the shutdown timeout.
func newHTTPServer(ctx context.Context, cfg config.ServerConfig, handler http.Handler) *http.Server {
	base := context.WithoutCancel(ctx)
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return base },
	}
}

// newLimiter returns the Redis limiter when a Redis URL is configured and
// the in-process limiter otherwise. The Redis client is added to the health
// components.
func newLimiter(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger, components map[string]rest.Pinger) (middleware.Limiter, func(), error) {
	if cfg.URL == "" {
		logger.Info("redis not configured, using in-process rate limiter")
		mem := middleware.NewMemoryLimiter(5 * time.Minute)
		return mem, mem.Stop, nil
	}

	client, err := redisadapter.Connect(ctx, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	components["redis"] = rest.PingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	return redisadapter.NewLimiter(client), closeFn, nil
}
