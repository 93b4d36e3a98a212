package classlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "inventory:classifications"

// RedisRecorder keeps the newest entries in a capped Redis list.
type RedisRecorder struct {
	rdb  *redis.Client
	key  string
	size int
}

func NewRedisRecorder(rdb *redis.Client, size int) *RedisRecorder {
	return &RedisRecorder{rdb: rdb, key: DefaultKey, size: size}
}

func (r *RedisRecorder) Record(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode classification entry: %w", err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.LPush(ctx, r.key, data)
	pipe.LTrim(ctx, r.key, 0, int64(r.size-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record classification: %w", err)
	}
	return nil
}

func (r *RedisRecorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > r.size {
		limit = r.size
	}

	raw, err := r.rdb.LRange(ctx, r.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read classifications: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		// Skip entries that no longer decode instead of failing the whole read.
		if err := json.Unmarshal([]byte(item), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
