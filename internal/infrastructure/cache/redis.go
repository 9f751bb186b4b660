package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis caches serialized ranking payloads and backs the recompute lock.
// A nil client means Redis was unreachable at startup; every method then
// degrades to a no-op so the API keeps serving from Postgres alone.
type Redis struct {
	client *redis.Client
	logger *log.Logger

	outageLogged atomic.Bool
}

// NewRedis dials Redis from REDIS_HOST / REDIS_PORT / REDIS_PASSWORD and
// probes it with a short ping. On failure it returns a bypassing instance
// instead of an error; the cache is an accelerator, not a dependency.
func NewRedis(logger *log.Logger) *Redis {
	host := envOr("REDIS_HOST", "localhost")
	port := envOr("REDIS_PORT", "6379")

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] Redis unreachable, running without cache: %v", err)
		}
		_ = client.Close()
		return &Redis{logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

func (r *Redis) bypassed() bool {
	return r == nil || r.client == nil
}

// noteOutage logs a mid-run Redis failure once; repeating it per request
// would drown the access log the moment Redis drops.
func (r *Redis) noteOutage(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.outageLogged.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis error, bypassing cache: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.bypassed() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

// GetJSON reads key and unmarshals it into out. The boolean reports a hit;
// a miss and a bypassed cache both come back (false, nil).
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.bypassed() {
		return false, nil
	}
	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		r.noteOutage(err)
		return false, err
	case len(raw) == 0:
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key. A non-positive ttl falls back to the
// REDIS_TTL default.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.bypassed() {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultTTL()
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		r.noteOutage(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.bypassed() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.noteOutage(err)
		return err
	}
	return nil
}

// DeleteByPattern walks matching keys with SCAN and deletes them one by
// one. Individual delete failures are logged and skipped so a single bad
// key cannot stall the sweep.
func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.bypassed() {
		return nil
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if err := r.client.Del(ctx, key).Err(); err != nil && r.logger != nil {
			r.logger.Printf("[Cache] delete failed key=%s pattern=%s err=%v", key, pattern, err)
		}
	}
	return iter.Err()
}

// InvalidateRankings drops every cached candidate ranking. Called whenever
// a confidence index changes, since any job's ordering may have shifted.
func (r *Redis) InvalidateRankings(ctx context.Context) error {
	return r.DeleteByPattern(ctx, "ranking:job:*")
}

// SetIfNotExists is a SETNX-based lock claim. With Redis down it reports
// the lock as acquired so background work still runs, just unguarded
// against a concurrent runner.
func (r *Redis) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if r.bypassed() {
		return true, nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	ok, err := r.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		r.noteOutage(err)
		return false, err
	}
	return ok, nil
}

func envOr(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

// defaultTTL reads REDIS_TTL (seconds); ten minutes when unset or invalid.
func defaultTTL() time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(os.Getenv("REDIS_TTL")))
	if err != nil || secs <= 0 {
		return 600 * time.Second
	}
	return time.Duration(secs) * time.Second
}
