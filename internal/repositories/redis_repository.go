package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/redis/go-redis/v9"
)

// RateLimitRepository counts attempts per scope and subject in a sliding window.
type RateLimitRepository interface {
	// Allow returns isAllowed, attempts left, seconds to wait.
	Allow(ctx context.Context, scope, subject string) (bool, int, int, error)
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.RateConfig
	now    func() time.Time
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.RedisConnect.Username, cfg.RedisConnect.Host, cfg.RedisConnect.Port)))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg *config.RateConfig) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg, now: time.Now}
}

func rateKey(scope, subject string) string {
	return fmt.Sprintf("rate:%s:%s", scope, subject)
}

func (r *redisRepository) Allow(ctx context.Context, scope, subject string) (bool, int, int, error) {
	logger := middleware.LoggerFromContext(ctx)

	key := rateKey(scope, subject)
	now := r.now()
	windowStart := now.Add(-r.cfg.WindowSize).UnixMilli()

	// scores are unix millis; members must be unique per attempt
	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: strconv.FormatInt(now.UnixNano(), 10)})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts > r.cfg.MaxAttempts {
		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(r.cfg.WindowSize.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		oldest := time.UnixMilli(int64(scores[0].Score))
		retryAfter := max(int(oldest.Add(r.cfg.WindowSize).Sub(now).Seconds()), 1)

		logger.Warn("Rate limit exceeded", slog.String("scope", scope), slog.String("subject", subject), slog.Int64("attempts", attempts))
		return false, 0, retryAfter, nil
	}

	remaining := int(r.cfg.MaxAttempts - attempts)

	logger.Debug("Rate limit check passed", slog.String("scope", scope), slog.Int64("attempts", attempts), slog.Int("remaining", remaining))
	return true, remaining, 0, nil
}
