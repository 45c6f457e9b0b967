package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Reputation ReputationConfig `yaml:"reputation"`
	Appeal     AppealConfig     `yaml:"appeal"`
	Harvest    HarvestConfig    `yaml:"harvest"`
	LDES       LDESConfig       `yaml:"ldes"`
	Tasks      TasksConfig      `yaml:"tasks"`
	Jobs       JobsConfig       `yaml:"jobs"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"termtrans"`
	// ConnectAttempts bounds the startup ping; the database container may come up after the server.
	ConnectAttempts int           `yaml:"connect_attempts"   env:"DATABASE_CONNECT_ATTEMPTS"   env-default:"5"`
	ConnectDelay    time.Duration `yaml:"connect_delay"      env:"DATABASE_CONNECT_DELAY"      env-default:"500ms"`
}

// AuthConfig holds session settings.
type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"    env:"AUTH_JWT_SECRET"    env-required:"true"`
	JWTIssuer    string        `yaml:"jwt_issuer"    env:"AUTH_JWT_ISSUER"    env-default:"termtrans"`
	SessionTTL   time.Duration `yaml:"session_ttl"   env:"AUTH_SESSION_TTL"   env-default:"168h"`
	CookieName   string        `yaml:"cookie_name"   env:"AUTH_COOKIE_NAME"   env-default:"session"`
	CookieSecure bool          `yaml:"cookie_secure" env:"AUTH_COOKIE_SECURE" env-default:"true"`
	DevLogin     bool          `yaml:"dev_login"     env:"AUTH_DEV_LOGIN"     env-default:"false"`
}

// ReputationConfig holds reputation settings.
type ReputationConfig struct {
	// RulesFile seeds rules missing from the database at startup.
	RulesFile string `yaml:"rules_file" env:"REPUTATION_RULES_FILE"`
}

// AppealConfig holds appeal discussion settings.
type AppealConfig struct {
	MaxMessagesPerHour int `yaml:"max_messages_per_hour" env:"APPEAL_MAX_MESSAGES_PER_HOUR" env-default:"10"`
}

// HarvestConfig holds SPARQL harvesting settings.
type HarvestConfig struct {
	BatchSize      int           `yaml:"batch_size"       env:"HARVEST_BATCH_SIZE"       env-default:"1000"`
	FieldsRaw      string        `yaml:"fields"           env:"HARVEST_FIELDS"           env-default:"prefLabel,altLabel,definition"`
	Timeout        time.Duration `yaml:"timeout"          env:"HARVEST_TIMEOUT"          env-default:"60s"`
	MaxRetries     int           `yaml:"max_retries"      env:"HARVEST_MAX_RETRIES"      env-default:"3"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" env:"HARVEST_RETRY_BASE_DELAY" env-default:"1s"`
}

// Fields returns the configured SKOS field names.
func (h HarvestConfig) Fields() []string {
	var out []string
	for _, f := range strings.Split(h.FieldsRaw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// LDESConfig holds LDES publishing settings.
type LDESConfig struct {
	BaseDir   string `yaml:"base_dir"   env:"LDES_BASE_DIR"   env-default:"./data/ldes"`
	PrefixURI string `yaml:"prefix_uri" env:"LDES_PREFIX_URI" env-default:"http://localhost:8080/ldes"`
}

// TasksConfig holds background task settings.
type TasksConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TASKS_TIMEOUT" env-default:"30m"`
}

// JobsConfig holds the cron schedules.
type JobsConfig struct {
	Enabled            bool   `yaml:"enabled"              env:"JOBS_ENABLED"              env-default:"false"`
	HarvestCron        string `yaml:"harvest_cron"         env:"JOBS_HARVEST_CRON"         env-default:"0 3 * * *"`
	LDESCron           string `yaml:"ldes_cron"            env:"JOBS_LDES_CRON"            env-default:"30 3 * * *"`
	SessionCleanupCron string `yaml:"session_cleanup_cron" env:"JOBS_SESSION_CLEANUP_CRON" env-default:"@hourly"`
}

// RateLimitConfig holds the per-IP request limit.
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"RATE_LIMIT_ENABLED"  env-default:"true"`
	Requests int           `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"300"`
	Window   time.Duration `yaml:"window"   env:"RATE_LIMIT_WINDOW"   env-default:"1m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
