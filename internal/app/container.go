package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/activity"
	appealrepo "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/appeal"
	communityrepo "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/community"
	reputationrepo "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/reputation"
	sessionrepo "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/session"
	taskrepo "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/task"
	termrepo "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/term"
	translationrepo "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/translation"
	userrepo "github.com/heartmarshall/termtrans-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/termtrans-backend/internal/adapter/provider/sparql"
	"github.com/heartmarshall/termtrans-backend/internal/auth"
	"github.com/heartmarshall/termtrans-backend/internal/config"
	"github.com/heartmarshall/termtrans-backend/internal/domain"
	"github.com/heartmarshall/termtrans-backend/internal/metrics"
	"github.com/heartmarshall/termtrans-backend/internal/service/appeal"
	authsvc "github.com/heartmarshall/termtrans-backend/internal/service/auth"
	"github.com/heartmarshall/termtrans-backend/internal/service/community"
	"github.com/heartmarshall/termtrans-backend/internal/service/harvest"
	"github.com/heartmarshall/termtrans-backend/internal/service/ldes"
	"github.com/heartmarshall/termtrans-backend/internal/service/reputation"
	"github.com/heartmarshall/termtrans-backend/internal/service/task"
	"github.com/heartmarshall/termtrans-backend/internal/service/translation"
	usersvc "github.com/heartmarshall/termtrans-backend/internal/service/user"
	"github.com/heartmarshall/termtrans-backend/migrations"
)

// Container holds the wired repositories and services shared by the server
// and the command-line tools.
type Container struct {
	Pool    *pgxpool.Pool
	Metrics *metrics.Metrics

	Auth         *authsvc.Service
	Users        *usersvc.Service
	Reputation   *reputation.Service
	Translations *translation.Service
	Appeals      *appeal.Service
	Communities  *community.Service
	Tasks        *task.Service
	Harvest      *harvest.Service
	LDES         *ldes.Service

	userRepo *userrepo.Repo
	sessions *sessionrepo.Repo
}

// NewContainer connects to the database, optionally applies migrations and
// builds every service. The caller owns the returned container and must Close it.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	c, err := Wire(ctx, cfg, pool, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

// Wire builds the services on top of an open pool. Close on the returned
// container closes pool.
func Wire(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Container, error) {
	rec := metrics.New()
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	sessions := sessionrepo.New(pool)
	activities := activityrepo.New(pool)
	translations := translationrepo.New(pool)
	terms := termrepo.New(pool)
	appeals := appealrepo.New(pool)
	communities := communityrepo.New(pool)
	ledger := reputationrepo.New(pool)
	tasks := taskrepo.New(pool)

	c := &Container{
		Pool:     pool,
		Metrics:  rec,
		userRepo: users,
		sessions: sessions,
	}

	c.Reputation = reputation.NewService(logger, users, ledger, ledger, activities, txm, rec)
	c.Tasks = task.NewService(logger, tasks, rec, cfg.Tasks.Timeout)
	c.Translations = translation.NewService(logger, translations, terms, users, activities, c.Reputation)
	c.Appeals = appeal.NewService(logger, appeals, translations, activities, cfg.Appeal.MaxMessagesPerHour)
	c.Communities = community.NewService(logger, communities, activities, txm)
	c.Users = usersvc.NewService(logger, users, activities, c.Reputation, dashboardStats{
		translations: translations,
		appeals:      appeals,
		tasks:        tasks,
	})
	c.Auth = authsvc.NewService(logger, users, sessions,
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		authsvc.Config{DevLogin: cfg.Auth.DevLogin, SessionTTL: cfg.Auth.SessionTTL},
	)

	client := sparql.NewClient(sparql.Options{
		Timeout:    cfg.Harvest.Timeout,
		MaxRetries: cfg.Harvest.MaxRetries,
		BaseDelay:  cfg.Harvest.RetryBaseDelay,
	}, logger)
	c.Harvest = harvest.NewService(logger, client, terms, c.Tasks, activities, harvest.Config{
		BatchSize: cfg.Harvest.BatchSize,
		Fields:    cfg.Harvest.Fields(),
	})
	c.LDES = ldes.NewService(logger, translations, terms, c.Tasks, activities, ldes.Config{
		BaseDir:   cfg.LDES.BaseDir,
		PrefixURI: cfg.LDES.PrefixURI,
	})

	if err := c.seedRules(ctx, cfg.Reputation.RulesFile, logger); err != nil {
		return nil, err
	}

	return c, nil
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}

func (c *Container) seedRules(ctx context.Context, path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	values, err := reputation.LoadRulesFile(path)
	if err != nil {
		return err
	}
	if err := c.Reputation.SeedRules(ctx, values); err != nil {
		return fmt.Errorf("seed reputation rules: %w", err)
	}
	logger.Info("reputation rules seeded", slog.String("file", path), slog.Int("rules", len(values)))
	return nil
}

// dashboardStats adapts repository counters to the admin dashboard.
type dashboardStats struct {
	translations *translationrepo.Repo
	appeals      *appealrepo.Repo
	tasks        *taskrepo.Repo
}

func (d dashboardStats) CountTranslationsByStatus(ctx context.Context) (map[domain.TranslationStatus]int, error) {
	return d.translations.CountByStatus(ctx)
}

func (d dashboardStats) CountOpenAppeals(ctx context.Context) (int, error) {
	return d.appeals.CountOpen(ctx)
}

func (d dashboardStats) CountPendingReports(ctx context.Context) (int, error) {
	return d.appeals.CountReports(ctx, domain.ReportStatusPending)
}

func (d dashboardStats) TaskStats(ctx context.Context) (domain.TaskStats, error) {
	return d.tasks.GetStats(ctx)
}
