package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/smukkama/crop-advisory/internal/alerting"
)

const (
	historyKey = "alert_history"

	// Suppression and dismissal keys only matter for one calendar day
	dayKeyTTL = 48 * time.Hour

	scanCount = 100
)

// RedisStore keeps history and suppression keys in Redis
type RedisStore struct {
	redis *redis.Client
	clock Clock
}

// NewRedisStore creates a Redis backed store. A nil clock uses RealClock.
func NewRedisStore(redisClient *redis.Client, clock Clock) *RedisStore {
	if clock == nil {
		clock = RealClock{}
	}
	return &RedisStore{redis: redisClient, clock: clock}
}

func sentKey(alertType alerting.AlertType, day time.Time) string {
	return "alert_sent:" + SuppressionKey(alertType, day)
}

func dismissedKey(day time.Time) string {
	return "alert_dismissed:" + day.Format(DayLayout)
}

// ShouldNotify checks whether the suppression key is still free
func (rs *RedisStore) ShouldNotify(ctx context.Context, alert alerting.WeatherAlert, day time.Time) (bool, error) {
	n, err := rs.redis.Exists(ctx, sentKey(alert.Type, day)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check suppression in Redis: %w", err)
	}
	return n == 0, nil
}

// Record marks the suppression key and prepends the entry to the capped list
func (rs *RedisStore) Record(ctx context.Context, alert alerting.WeatherAlert, day time.Time) error {
	now := rs.clock.Now()
	entry := newEntry(uuid.NewString(), alert, day, now)

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	_, err = rs.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sentKey(alert.Type, day), now.Unix(), dayKeyTTL)
		pipe.LPush(ctx, historyKey, data)
		pipe.LTrim(ctx, historyKey, 0, Limit-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record entry in Redis: %w", err)
	}

	return nil
}

// List returns the stored entries newest first. Unreadable entries are skipped.
func (rs *RedisStore) List(ctx context.Context) ([]Entry, error) {
	items, err := rs.redis.LRange(ctx, historyKey, 0, Limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history from Redis: %w", err)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Clear deletes the history list and every suppression key
func (rs *RedisStore) Clear(ctx context.Context) error {
	keys := []string{historyKey}

	iter := rs.redis.Scan(ctx, 0, "alert_sent:*", scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan suppression keys: %w", err)
	}

	for start := 0; start < len(keys); start += scanCount {
		end := min(start+scanCount, len(keys))
		if err := rs.redis.Del(ctx, keys[start:end]...).Err(); err != nil {
			return fmt.Errorf("failed to clear history in Redis: %w", err)
		}
	}

	return nil
}

// Claim takes the suppression key with SETNX
func (rs *RedisStore) Claim(ctx context.Context, alertType alerting.AlertType, day time.Time) (bool, error) {
	ok, err := rs.redis.SetNX(ctx, sentKey(alertType, day), rs.clock.Now().Unix(), dayKeyTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim suppression in Redis: %w", err)
	}
	return ok, nil
}

// Release frees a claimed suppression key
func (rs *RedisStore) Release(ctx context.Context, alertType alerting.AlertType, day time.Time) error {
	return rs.redis.Del(ctx, sentKey(alertType, day)).Err()
}

func (rs *RedisStore) Dismiss(ctx context.Context, alertType alerting.AlertType, day time.Time) error {
	key := dismissedKey(day)

	_, err := rs.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, string(alertType))
		pipe.Expire(ctx, key, dayKeyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to dismiss alert in Redis: %w", err)
	}
	return nil
}

func (rs *RedisStore) Dismissed(ctx context.Context, day time.Time) (map[alerting.AlertType]bool, error) {
	members, err := rs.redis.SMembers(ctx, dismissedKey(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read dismissals from Redis: %w", err)
	}

	dismissed := make(map[alerting.AlertType]bool, len(members))
	for _, m := range members {
		dismissed[alerting.AlertType(m)] = true
	}
	return dismissed, nil
}
