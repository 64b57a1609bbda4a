package cache

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"HomoCure/database"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Locker serializes work on a key. The returned function releases the lock.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

const lockStripes = 64

// MemoryLocker guards keys with a fixed set of striped mutexes.
type MemoryLocker struct {
	stripes [lockStripes]sync.Mutex
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{}
}

func (l *MemoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	mu := &l.stripes[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock, nil
}

// RedisLocker acquires locks with SETNX and releases them with an owner check,
// retrying a few times before giving up.
type RedisLocker struct {
	client     *redis.Client
	ttl        time.Duration
	maxRetries int
	retryDelay time.Duration
	logger     *zap.SugaredLogger
}

func NewRedisLocker(client *redis.Client, logger *zap.SugaredLogger) *RedisLocker {
	return &RedisLocker{
		client:     client,
		ttl:        10 * time.Second,
		maxRetries: 20,
		retryDelay: 50 * time.Millisecond,
		logger:     logger,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := "lock:" + key
	lockValue := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < l.maxRetries; i++ {
		locked, err = database.NewLock(ctx, l.client, lockKey, lockValue, l.ttl)
		if err == nil && locked {
			break
		}
		if i < l.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(l.retryDelay):
			}
		}
	}
	if !locked {
		if err == nil {
			err = errors.New("lock is held elsewhere")
		}
		return nil, errors.Wrap(err, "failed to acquire lock after retries")
	}

	return func() {
		// The caller's context may already be cancelled when the lock is released.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.ReleaseLock(releaseCtx, l.client, lockKey, lockValue); err != nil {
			l.logger.Warnw("failed to release lock", "key", lockKey, "error", err)
		}
	}, nil
}
