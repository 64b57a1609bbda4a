package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds the application configuration
type AppConfig struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8930"`
	Env      string `envconfig:"ENV" default:"production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	SessionTTL       time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	SymmetricKey     string        `envconfig:"SYMMETRIC_KEY"`
	SessionCacheSize int           `envconfig:"SESSION_CACHE_SIZE" default:"4096"`

	RedisURL          string        `envconfig:"REDIS_URL"`
	RedisPoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"5"`
	RedisDialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"30s"`
	RedisReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"10s"`
	RedisMaxRetries   int           `envconfig:"REDIS_MAX_RETRIES" default:"3"`

	LookupDelay     time.Duration `envconfig:"LOOKUP_DELAY" default:"1s"`
	NotificationTTL time.Duration `envconfig:"NOTIFICATION_TTL" default:"5s"`
	BcryptCost      int           `envconfig:"BCRYPT_COST" default:"10"`

	RateLimitRPS   float64  `envconfig:"RATE_LIMIT_RPS" default:"15"`
	RateLimitBurst int      `envconfig:"RATE_LIMIT_BURST" default:"30"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`

	SMTPHost   string   `envconfig:"SMTP_HOST"`
	SMTPPort   int      `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser   string   `envconfig:"SMTP_USER"`
	SMTPPass   string   `envconfig:"SMTP_PASS"`
	MailTopics []string `envconfig:"MAIL_TOPICS" default:"patient.added"`
}

// Load reads the configuration from environment variables.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// RedisEnabled reports whether sessions are kept in Redis instead of process memory.
func (c *AppConfig) RedisEnabled() bool {
	return c.RedisURL != ""
}

// MailEnabled reports whether notifications are also delivered over SMTP.
func (c *AppConfig) MailEnabled() bool {
	return c.SMTPHost != ""
}
