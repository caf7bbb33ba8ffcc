package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// maxJournal caps the Redis roll list.
const maxJournal = 1000

// RedisStore keeps settings and the roll journal in Redis.
// Keys are namespaced as "{prefix}:settings" and "{prefix}:rolls".
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps client. An empty prefix defaults to "reprotrack".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "reprotrack"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// DialRedis connects to addr and verifies the server answers.
func DialRedis(ctx context.Context, addr, prefix string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return NewRedisStore(client, prefix), nil
}

func (r *RedisStore) settingsKey() string { return r.prefix + ":settings" }
func (r *RedisStore) rollsKey() string    { return r.prefix + ":rolls" }

// LoadSettings returns the stored settings document, or nil if none was saved yet.
func (r *RedisStore) LoadSettings(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.settingsKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return data, nil
}

// SaveSettings replaces the stored settings document.
func (r *RedisStore) SaveSettings(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.settingsKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// RecordRoll pushes rolls onto the journal list, newest first.
func (r *RedisStore) RecordRoll(ctx context.Context, rolls ...Roll) error {
	if len(rolls) == 0 {
		return nil
	}
	values := make([]any, 0, len(rolls))
	for _, roll := range rolls {
		if roll.ID == "" {
			roll.ID = uuid.NewString()
		}
		b, err := json.Marshal(roll)
		if err != nil {
			return fmt.Errorf("encode roll %s: %w", roll.ID, err)
		}
		values = append(values, b)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.rollsKey(), values...)
	pipe.LTrim(ctx, r.rollsKey(), 0, maxJournal-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record rolls: %w", err)
	}
	return nil
}

// RecentRolls returns the most recent rolls, newest first. An empty chatID
// matches every chat.
func (r *RedisStore) RecentRolls(ctx context.Context, chatID string, limit int) ([]Roll, error) {
	items, err := r.client.LRange(ctx, r.rollsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("recent rolls: %w", err)
	}
	var rolls []Roll
	for _, item := range items {
		if len(rolls) >= limit {
			break
		}
		var roll Roll
		if err := json.Unmarshal([]byte(item), &roll); err != nil {
			return nil, fmt.Errorf("decode roll: %w", err)
		}
		if chatID != "" && roll.ChatID != chatID {
			continue
		}
		rolls = append(rolls, roll)
	}
	return rolls, nil
}

// Close closes the client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
