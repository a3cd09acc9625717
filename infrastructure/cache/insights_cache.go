package cache

import (
	"context"
	"encoding/json"
	"time"

	"pagecaster/domain/model"
	"pagecaster/domain/repository"

	"github.com/redis/go-redis/v9"
)

const insightsKeyPrefix = "insights:"

// InsightsCache keeps recent post insight responses in Redis so repeated
// dashboard reads do not hit the remote API within the TTL.
type InsightsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewInsightsCache(client *redis.Client, ttl time.Duration) repository.IInsightsCache {
	return &InsightsCache{client: client, ttl: ttl}
}

func (c *InsightsCache) Get(ctx context.Context, postID string) (*model.PostInsights, error) {
	val, err := c.client.Get(ctx, insightsKeyPrefix+postID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var insights model.PostInsights
	if err := json.Unmarshal([]byte(val), &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

func (c *InsightsCache) Set(ctx context.Context, insights *model.PostInsights) error {
	payload, err := json.Marshal(insights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, insightsKeyPrefix+insights.PostID, payload, c.ttl).Err()
}
