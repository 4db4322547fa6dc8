package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quiz-maker/internal/domain"
)

// GetJSON decodes the cached value at key into dest. A miss returns
// domain.ErrCacheMiss.
func GetJSON(ctx context.Context, c domain.Cache, key string, dest interface{}) error {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return nil
}

// SetJSON stores v encoded as JSON.
func SetJSON(ctx context.Context, c domain.Cache, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s for cache: %w", key, err)
	}
	return c.Set(ctx, key, string(data), ttl)
}
