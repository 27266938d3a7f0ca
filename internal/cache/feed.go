package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/PSINGLA1407/socialmedia/internal/model"
)

// FeedKey is the Redis key for the cached feed snapshot. The feed is global
// (every client sees the same post set), so one key suffices.
const FeedKey = "feed:posts"

// FeedCache holds a short-lived snapshot of the rendered feed. Writers
// (create post, like) invalidate it, so cached reads observe the same
// ordering and content a fresh load would.
type FeedCache interface {
	// Get returns the cached snapshot. found=false on miss or expiry.
	Get(ctx context.Context) (posts []model.Post, found bool, err error)

	// Set stores the snapshot with the configured TTL.
	Set(ctx context.Context, posts []model.Post) error

	// Invalidate drops the snapshot. Called after any post or like write.
	Invalidate(ctx context.Context) error
}

// RedisFeedCache implements FeedCache on a single Redis string value.
type RedisFeedCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewFeedCache(client *redis.Client, ttl time.Duration, log *zap.Logger) FeedCache {
	return &RedisFeedCache{client: client, ttl: ttl, log: log}
}

func (c *RedisFeedCache) Get(ctx context.Context) ([]model.Post, bool, error) {
	data, err := c.client.Get(ctx, FeedKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		c.log.Warn("feed cache get failed", zap.Error(err))
		return nil, false, fmt.Errorf("get feed snapshot: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		// A corrupt snapshot is treated as a miss; the next Set overwrites it.
		c.log.Warn("feed cache snapshot corrupt", zap.Error(err))
		return nil, false, nil
	}

	c.log.Debug("feed cache hit", zap.Int("posts", len(posts)))
	return posts, true, nil
}

func (c *RedisFeedCache) Set(ctx context.Context, posts []model.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("marshal feed snapshot: %w", err)
	}

	if err := c.client.Set(ctx, FeedKey, data, c.ttl).Err(); err != nil {
		c.log.Warn("feed cache set failed", zap.Error(err))
		return fmt.Errorf("set feed snapshot: %w", err)
	}
	return nil
}

func (c *RedisFeedCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, FeedKey).Err(); err != nil {
		c.log.Warn("feed cache invalidate failed", zap.Error(err))
		return fmt.Errorf("invalidate feed snapshot: %w", err)
	}
	return nil
}
