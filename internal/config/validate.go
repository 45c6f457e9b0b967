package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/robfig/cron/v3"
)

var harvestFields = []string{
	"prefLabel", "altLabel", "definition", "notation",
	"scopeNote", "broader", "narrower", "related",
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// All problems are reported at once.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.session_ttl must be > 0 (got %s)", c.Auth.SessionTTL))
	}
	if c.Database.ConnectAttempts < 1 {
		errs = append(errs, fmt.Errorf("database.connect_attempts must be >= 1 (got %d)", c.Database.ConnectAttempts))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Appeal.MaxMessagesPerHour <= 0 {
		errs = append(errs, fmt.Errorf("appeal.max_messages_per_hour must be > 0 (got %d)", c.Appeal.MaxMessagesPerHour))
	}
	if err := c.Harvest.validate(); err != nil {
		errs = append(errs, fmt.Errorf("harvest: %w", err))
	}
	if strings.TrimSpace(c.LDES.BaseDir) == "" {
		errs = append(errs, errors.New("ldes.base_dir is required"))
	}
	if c.Tasks.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("tasks.timeout must be > 0 (got %s)", c.Tasks.Timeout))
	}
	if c.Jobs.Enabled {
		if err := c.Jobs.validate(); err != nil {
			errs = append(errs, fmt.Errorf("jobs: %w", err))
		}
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		errs = append(errs, errors.New("rate_limit.requests and rate_limit.window must be > 0 when enabled"))
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level))
	}
	if !slices.Contains([]string{"json", "text"}, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path))
	}

	return errors.Join(errs...)
}

func (h HarvestConfig) validate() error {
	if h.BatchSize < 1 || h.BatchSize > 10000 {
		return fmt.Errorf("batch_size must be in 1..10000 (got %d)", h.BatchSize)
	}
	fields := h.Fields()
	if len(fields) == 0 {
		return errors.New("fields must name at least one SKOS field")
	}
	for _, f := range fields {
		if !slices.Contains(harvestFields, f) {
			return fmt.Errorf("unknown field %q", f)
		}
	}
	if h.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be >= 1 (got %d)", h.MaxRetries)
	}
	return nil
}

func (j JobsConfig) validate() error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	for name, spec := range map[string]string{
		"harvest_cron":         j.HarvestCron,
		"ldes_cron":            j.LDESCron,
		"session_cleanup_cron": j.SessionCleanupCron,
	} {
		if spec == "" {
			continue
		}
		if _, err := parser.Parse(spec); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
