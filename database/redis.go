package database

import (
	"context"
	"time"

	"HomoCure/config"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrLockNotOwned = errors.New("lock release failed: not the lock owner")

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// LoadRedisConfig extracts the Redis settings from the application configuration.
func LoadRedisConfig(cfg *config.AppConfig) (RedisConfig, error) {
	if cfg.RedisURL == "" {
		return RedisConfig{}, errors.New("REDIS_URL environment variable is not set")
	}
	return RedisConfig{
		URL:          cfg.RedisURL,
		PoolSize:     cfg.RedisPoolSize,
		DialTimeout:  cfg.RedisDialTimeout,
		MinIdleConns: cfg.RedisMinIdleConns,
		ReadTimeout:  cfg.RedisReadTimeout,
		MaxRetries:   cfg.RedisMaxRetries,
	}, nil
}

// NewRedisClient creates a Redis client with the provided configuration and pings it.
func NewRedisClient(ctx context.Context, config RedisConfig, logger *zap.SugaredLogger) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Redis URL")
	}

	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.DialTimeout = config.DialTimeout
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to ping Redis server")
	}

	logger.Infow("redis client initialized",
		"poolSize", config.PoolSize,
		"minIdleConns", config.MinIdleConns,
		"dialTimeout", config.DialTimeout.String(),
		"readTimeout", config.ReadTimeout.String(),
		"maxRetries", config.MaxRetries,
	)
	return client, nil
}

// NewLock tries to acquire a distributed lock using SETNX.
func NewLock(ctx context.Context, client *redis.Client, key string, value string, ttl time.Duration) (bool, error) {
	if client == nil {
		return false, errors.New("Redis client is not initialized")
	}
	return client.SetNX(ctx, key, value, ttl).Result()
}

const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

var releaseScript = redis.NewScript(releaseLockScript)

// ReleaseLock releases a lock only if value still owns it.
func ReleaseLock(ctx context.Context, client *redis.Client, key string, value string) error {
	if client == nil {
		return errors.New("Redis client is not initialized")
	}

	result, err := releaseScript.Run(ctx, client, []string{key}, value).Int64()
	if err != nil {
		return errors.Wrap(err, "failed to release lock")
	}
	if result == 0 {
		return ErrLockNotOwned
	}
	return nil
}

// MonitorRedisPool logs the connection pool statistics.
func MonitorRedisPool(client *redis.Client, logger *zap.SugaredLogger) {
	stats := client.PoolStats()
	logger.Infow("redis pool stats", "total", stats.TotalConns, "idle", stats.IdleConns, "stale", stats.StaleConns)
}
