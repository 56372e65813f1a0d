package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Loan      LoanConfig      `yaml:"loan"`
	Assistant AssistantConfig `yaml:"assistant"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-Ip.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// MigrateOnStart applies the embedded migrations before the server starts.
	MigrateOnStart bool `yaml:"migrate_on_start" env:"DATABASE_MIGRATE_ON_START" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits. The assistant endpoints
// call a paid upstream and get their own, tighter budget.
type RateLimitConfig struct {
	Enabled            bool          `yaml:"enabled"              env:"RATE_LIMIT_ENABLED"              env-default:"true"`
	RequestsPerMinute  int           `yaml:"requests_per_minute"  env:"RATE_LIMIT_RPM"                  env-default:"600"`
	AssistantPerMinute int           `yaml:"assistant_per_minute" env:"RATE_LIMIT_ASSISTANT_RPM"        env-default:"20"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}

// LoanConfig holds reservation engine parameters.
type LoanConfig struct {
	DefaultDays int `yaml:"default_days" env:"LOAN_DEFAULT_DAYS" env-default:"14"`
	MaxDays     int `yaml:"max_days"     env:"LOAN_MAX_DAYS"     env-default:"30"`
	// ReleaseOnExpire makes SweepExpired flip the book back to available.
	ReleaseOnExpire bool `yaml:"release_on_expire" env:"LOAN_RELEASE_ON_EXPIRE" env-default:"false"`
}

// AssistantConfig holds settings of the librarian assistant and its completion backend.
type AssistantConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"ASSISTANT_ENABLED"    env-default:"true"`
	APIKey    string        `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	BaseURL   string        `yaml:"base_url"   env:"ASSISTANT_BASE_URL"`
	Model     string        `yaml:"model"      env:"ASSISTANT_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64         `yaml:"max_tokens" env:"ASSISTANT_MAX_TOKENS" env-default:"1024"`
	Timeout   time.Duration `yaml:"timeout"    env:"ASSISTANT_TIMEOUT"    env-default:"20s"`
	// ContextBooks bounds how many book summaries go into a prompt.
	ContextBooks int `yaml:"context_books" env:"ASSISTANT_CONTEXT_BOOKS" env-default:"20"`
}

// KafkaConfig holds the reservation event publisher settings.
// An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers  string `yaml:"brokers"   env:"KAFKA_BROKERS"`
	Topic    string `yaml:"topic"     env:"LOAN_EVENTS_TOPIC" env-default:"library.reservations"`
	ClientID string `yaml:"client_id" env:"KAFKA_CLIENT_ID"   env-default:"library-backend"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// BrokerList returns the configured brokers, trimmed, without empty items.
func (c KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Enabled reports whether at least one broker is configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.BrokerList()) > 0
}
