package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"lendshare/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// UserDirectoryCache is a read-through cache over the user read store.
// Lookups by id are cached with a TTL; mutations invalidate through
// InvalidateUser. With a nil client every call passes straight through.
type UserDirectoryCache struct {
	inner  queries.UserReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewUserDirectoryCache(inner queries.UserReadStore, client *redis.Client, ttl time.Duration) *UserDirectoryCache {
	return &UserDirectoryCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (c *UserDirectoryCache) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	if c.client == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := userKey(id)
	if payload, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var view queries.UserView
		if err := json.Unmarshal(payload, &view); err == nil {
			return &view, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		c.client.Del(ctx, key)
	} else if err != redis.Nil {
		slog.Warn("user cache read failed", "user_id", id, "error", err)
	}

	view, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(view); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			slog.Warn("user cache write failed", "user_id", id, "error", err)
		}
	}
	return view, nil
}

// Exists trusts a cached entry but never caches absence: a missing key always
// consults the store.
func (c *UserDirectoryCache) Exists(ctx context.Context, id int64) (bool, error) {
	if c.client != nil {
		n, err := c.client.Exists(ctx, userKey(id)).Result()
		if err == nil && n > 0 {
			return true, nil
		}
	}
	return c.inner.Exists(ctx, id)
}

func (c *UserDirectoryCache) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	return c.inner.FindAll(ctx)
}

func (c *UserDirectoryCache) InvalidateUser(ctx context.Context, userID int64) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, userKey(userID)).Err()
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}
