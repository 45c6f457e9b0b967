package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/termtrans-backend/internal/config"
	"github.com/heartmarshall/termtrans-backend/internal/jobs"
	"github.com/heartmarshall/termtrans-backend/internal/transport/dataloader"
	"github.com/heartmarshall/termtrans-backend/internal/transport/middleware"
	"github.com/heartmarshall/termtrans-backend/internal/transport/rest"
)

// Run is the server entry point. It wires every dependency, serves HTTP until
// ctx is cancelled and then shuts down in reverse order.
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

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Tasks.Recover(ctx); err != nil {
		return fmt.Errorf("recover tasks: %w", err)
	}

	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(logger, c.Tasks, c.Harvest, c.LDES, c.sessions, jobs.Config{
			HarvestCron:        cfg.Jobs.HarvestCron,
			LDESCron:           cfg.Jobs.LDESCron,
			SessionCleanupCron: cfg.Jobs.SessionCleanupCron,
		})
		if err := scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer scheduler.Stop()
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Window)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.Handler(cfg, logger, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

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

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown", slog.String("error", err.Error()))
		}
		if err := c.Tasks.Wait(shutdownCtx); err != nil {
			logger.Warn("tasks still running at shutdown", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// Handler builds the full HTTP handler: routes wrapped in the middleware chain.
// limiter may be nil.
func (c *Container) Handler(cfg *config.Config, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	health := rest.NewHealthHandler(BuildVersion(),
		rest.DatabaseCheck(c.Pool),
		rest.DirCheck("ldes_storage", cfg.LDES.BaseDir),
	)
	h := rest.Handlers{
		Health:       health,
		Auth:         rest.NewAuthHandler(c.Auth, rest.CookieConfig{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure}, logger),
		Translations: rest.NewTranslationHandler(c.Translations, c.Reputation, logger),
		Appeals:      rest.NewAppealHandler(c.Appeals, logger),
		Communities:  rest.NewCommunityHandler(c.Communities, logger),
		Admin:        rest.NewAdminHandler(c.Users, c.Reputation, logger),
		Sources:      rest.NewSourceHandler(c.Harvest, c.LDES, c.Tasks, logger),
		LDESDir:      cfg.LDES.BaseDir,
	}
	if cfg.Metrics.Enabled {
		h.Metrics = c.Metrics.Handler()
		h.MetricsPath = cfg.Metrics.Path
	}

	var rateLimit middleware.Middleware
	if limiter != nil {
		rateLimit = limiter.Middleware()
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger, "/live", "/ready", cfg.Metrics.Path),
		middleware.CORS(cfg.CORS),
		rateLimit,
		middleware.Auth(c.Auth, cfg.Auth.CookieName, logger),
		dataloader.Middleware(c.userRepo),
		middleware.Metrics(c.Metrics),
	)
	return chain(rest.NewRouter(h))
}
