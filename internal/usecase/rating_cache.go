package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const ratingCacheTTL = 5 * time.Minute

// RatingCache keeps computed title ratings in redis so hot titles don't
// re-aggregate on every read. A nil client degrades to a pass-through.
type RatingCache struct {
	client *redis.Client
}

func NewRatingCache(client *redis.Client) *RatingCache {
	return &RatingCache{client: client}
}

func ratingKey(titleID int64) string {
	return fmt.Sprintf("title_rating:%d", titleID)
}

func (c *RatingCache) Get(ctx context.Context, titleID int64) (*float64, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	value, err := c.client.Get(ctx, ratingKey(titleID)).Result()
	if err != nil {
		return nil, false
	}
	if value == "null" {
		return nil, true
	}
	rating, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, false
	}
	return &rating, true
}

func (c *RatingCache) Set(ctx context.Context, titleID int64, rating *float64) {
	if c == nil || c.client == nil {
		return
	}

	value := "null"
	if rating != nil {
		value = strconv.FormatFloat(*rating, 'f', -1, 64)
	}
	c.client.Set(ctx, ratingKey(titleID), value, ratingCacheTTL)
}

func (c *RatingCache) Invalidate(ctx context.Context, titleID int64) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, ratingKey(titleID))
}
