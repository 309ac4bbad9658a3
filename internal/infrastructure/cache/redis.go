package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"breneo/internal/config"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 600 * time.Second

// Redis is a best-effort cache. When the server cannot be reached at startup
// every call becomes a no-op so callers fall through to the database.
type Redis struct {
	client *redis.Client
	logger *log.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("Cache | redis unavailable, bypassing cache: %v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, logger: logger, ttl: ttl}
	}

	return &Redis{client: client, logger: logger, ttl: ttl}
}

// NewRedisFromClient wraps an existing client. Used by tests against a
// throwaway server.
func NewRedisFromClient(client *redis.Client, ttl time.Duration, logger *log.Logger) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{client: client, logger: logger, ttl: ttl}
}

func (r *Redis) Available() bool {
	return !r.isUnavailable()
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("Cache | redis error, bypassing cache: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	v, ok, err := r.Get(ctx, key)
	if err != nil || !ok || v == "" {
		return false, err
	}
	if err := json.Unmarshal([]byte(v), out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, string(b), r.cacheTTL(ttl))
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	if r.isUnavailable() {
		return "", false, nil
	}
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		r.warnUnavailableOnce(err)
		return "", false, err
	}
	return v, true, nil
}

// Set stores value under key. A zero ttl keeps the key until it is deleted,
// matching kvstore.Memory; cached JSON goes through SetJSON for the default ttl.
func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Set(ctx, key, value, keyTTL(ttl)).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.isUnavailable() {
		return nil
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if err := r.client.Del(ctx, k).Err(); err != nil && r.logger != nil {
			r.logger.Printf("Cache | delete error key=%s pattern=%s err=%v", k, pattern, err)
		}
	}
	return iter.Err()
}

func (r *Redis) SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	ok, err := r.client.SetNX(ctx, key, value, keyTTL(ttl)).Result()
	if err != nil {
		r.warnUnavailableOnce(err)
		return false, err
	}
	return ok, nil
}

func (r *Redis) cacheTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return r.ttl
	}
	return ttl
}

// keyTTL keeps negative ttls from reaching go-redis, which reads them as KEEPTTL.
func keyTTL(ttl time.Duration) time.Duration {
	if ttl < 0 {
		return 0
	}
	return ttl
}

func ProfileKey(userID string) string {
	return "profile:" + userID
}

func RecommendationsPattern(userID string) string {
	return "reco:" + userID + ":*"
}

func RecommendationsKey(userID string, limit, offset, minScore int) string {
	return fmt.Sprintf("reco:%s:%d:%d:%d", userID, limit, offset, minScore)
}

// InvalidateUser drops every cached entry derived from the user's match
// profile.
func (r *Redis) InvalidateUser(ctx context.Context, userID string) error {
	if r.isUnavailable() {
		return nil
	}
	var firstErr error
	if err := r.Delete(ctx, ProfileKey(userID)); err != nil {
		firstErr = err
	}
	if err := r.DeleteByPattern(ctx, RecommendationsPattern(userID)); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// InvalidateRecommendations drops every user's cached recommendation pages,
// used when a job is published.
func (r *Redis) InvalidateRecommendations(ctx context.Context) error {
	return r.DeleteByPattern(ctx, "reco:*")
}
