package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/termtrans-backend/internal/config"
)

// NewPool opens the pgx pool and waits until the server answers a ping.
// Pings are retried with exponential backoff up to cfg.ConnectAttempts times.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := waitReady(ctx, pool, cfg, logger); err != nil {
		pool.Close()
		return nil, err
	}

	stat := pool.Stat()
	logger.Info("database pool ready",
		slog.String("application_name", cfg.ApplicationName),
		slog.Int("max_conns", int(stat.MaxConns())),
	)
	return pool, nil
}

func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	if cfg.ApplicationName != "" {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = cfg.ApplicationName
	}
	return poolCfg, nil
}

func waitReady(ctx context.Context, pool *pgxpool.Pool, cfg config.DatabaseConfig, logger *slog.Logger) error {
	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	b := backoff.NewExponentialBackOff()
	if cfg.ConnectDelay > 0 {
		b.InitialInterval = cfg.ConnectDelay
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx)

	err := backoff.RetryNotify(func() error {
		return pool.Ping(ctx)
	}, policy, func(err error, delay time.Duration) {
		logger.Warn("database not ready",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", delay),
		)
	})
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
