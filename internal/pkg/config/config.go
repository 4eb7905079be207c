package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string        `env:"PORT,           default=8080"`
	Env           string        `env:"ENV,            default=development"`
	SessionSecret string        `env:"SESSION_SECRET, required"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=12h"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Alerts   AlertsConfig
}

type PostgresConfig struct {
	DSN string `env:"DATABASE_URL, default=postgres://localhost:5432/payout_portal?sslmode=disable"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"SMTP_FROM, default=pagos@artistpay.example"`
}

// AlertsConfig seeds the in-memory review-alert thresholds. The store is
// mutable at runtime via the admin API and intentionally not persisted.
type AlertsConfig struct {
	AmountThreshold  float64 `env:"ALERT_AMOUNT_THRESHOLD,   default=10000"`
	WithdrawalCount  int     `env:"ALERT_WITHDRAWAL_COUNT,   default=5"`
	ReviewWindowDays int     `env:"ALERT_REVIEW_WINDOW_DAYS, default=7"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
