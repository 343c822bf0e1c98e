package counter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// RedisConfig holds Redis counter configuration.
type RedisConfig struct {
	URL          string
	KeyPrefix    string
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultRedisConfig returns counter defaults for url.
func DefaultRedisConfig(url string) RedisConfig {
	return RedisConfig{
		URL:          url,
		KeyPrefix:    DefaultKeyPrefix,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// RedisStore 使用 Redis 持久化计数，所有调用经过熔断器
type RedisStore struct {
	client *redis.Client
	prefix string
	cb     *gobreaker.CircuitBreaker
	log    zerolog.Logger
	now    func() time.Time
}

// NewRedisStore dials Redis and verifies the connection with a PING.
func NewRedisStore(ctx context.Context, cfg RedisConfig, logger zerolog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opt.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opt.WriteTimeout = cfg.WriteTimeout
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return newRedisStore(client, cfg.KeyPrefix, logger), nil
}

func newRedisStore(client *redis.Client, prefix string, logger zerolog.Logger) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	log := logger.With().Str("component", "counter").Logger()

	settings := gobreaker.Settings{
		Name:        "redis-counter",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
		cb:     gobreaker.NewCircuitBreaker(settings),
		log:    log,
		now:    time.Now,
	}
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) totalKey() string {
	return s.prefix + ":total"
}

func (s *RedisStore) dailyKey(date string) string {
	return s.prefix + ":daily:" + date
}

// Increment bumps the total and today's key in one pipeline.
func (s *RedisStore) Increment(ctx context.Context) error {
	dayKey := s.dailyKey(s.now().Format(dayLayout))

	_, err := s.cb.Execute(func() (interface{}, error) {
		pipe := s.client.TxPipeline()
		pipe.Incr(ctx, s.totalKey())
		pipe.Incr(ctx, dayKey)
		pipe.Expire(ctx, dayKey, dailyTTL)
		_, err := pipe.Exec(ctx)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("increment counter: %w", err)
	}
	return nil
}

// Total returns the all-time count; a missing key reads as zero.
func (s *RedisStore) Total(ctx context.Context) (int64, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		n, err := s.client.Get(ctx, s.totalKey()).Int64()
		if errors.Is(err, redis.Nil) {
			return int64(0), nil
		}
		return n, err
	})
	if err != nil {
		return 0, fmt.Errorf("read counter total: %w", err)
	}
	return res.(int64), nil
}

// Daily reads the window with a single MGET, zero-filling missing days.
func (s *RedisStore) Daily(ctx context.Context, days int) ([]DailyCount, error) {
	if days <= 0 {
		return nil, ErrInvalidWindow
	}

	dates := windowDates(s.now(), days)
	keys := make([]string, len(dates))
	for i, date := range dates {
		keys[i] = s.dailyKey(date)
	}

	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.client.MGet(ctx, keys...).Result()
	})
	if err != nil {
		return nil, fmt.Errorf("read daily counters: %w", err)
	}

	values := res.([]interface{})
	out := make([]DailyCount, len(dates))
	for i, date := range dates {
		out[i] = DailyCount{Date: date}
		raw, ok := values[i].(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.log.Warn().Str("key", keys[i]).Msg("non-numeric daily counter ignored")
			continue
		}
		out[i].Count = n
	}
	return out, nil
}
