package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const blockedDatesPrefix = "blocked_dates:"

// BlockedDates caches the display list of blocked days per apartment.
// Failures are logged and reported as misses; callers fall through to
// the store.
type BlockedDates struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewBlockedDates(client *redis.Client, ttl time.Duration, log *logrus.Logger) *BlockedDates {
	return &BlockedDates{client: client, ttl: ttl, log: log}
}

func BlockedDatesKey(apartmentID string) string {
	return blockedDatesPrefix + apartmentID
}

func (c *BlockedDates) enabled() bool {
	return c != nil && c.client != nil
}

func (c *BlockedDates) Get(ctx context.Context, apartmentID string) ([]string, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.client.Get(ctx, BlockedDatesKey(apartmentID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warn(err, apartmentID, "blocked dates cache read failed")
		}
		return nil, false
	}

	var days []string
	if err := json.Unmarshal(raw, &days); err != nil {
		c.warn(err, apartmentID, "blocked dates cache entry corrupt")
		return nil, false
	}
	return days, true
}

func (c *BlockedDates) Set(ctx context.Context, apartmentID string, days []string) {
	if !c.enabled() {
		return
	}
	if days == nil {
		days = []string{}
	}

	raw, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, BlockedDatesKey(apartmentID), raw, c.ttl).Err(); err != nil {
		c.warn(err, apartmentID, "blocked dates cache write failed")
	}
}

func (c *BlockedDates) Invalidate(ctx context.Context, apartmentID string) {
	if !c.enabled() {
		return
	}
	if err := c.client.Del(ctx, BlockedDatesKey(apartmentID)).Err(); err != nil {
		c.warn(err, apartmentID, "blocked dates cache invalidate failed")
	}
}

func (c *BlockedDates) warn(err error, apartmentID, msg string) {
	if c.log == nil {
		return
	}
	c.log.WithFields(logrus.Fields{
		"apartment_id": apartmentID,
	}).WithError(err).Warn(msg)
}
