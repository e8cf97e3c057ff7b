// Package cache keeps a redis-backed copy of the approved-pitch listing, the
// one hot read path in the system. The cache is optional: a nil *Listing is
// a valid no-op handle, so deployments without redis just skip it.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pitchhub/internal/models"
)

const approvedKey = "pitches:approved"

func ConnectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// Listing caches the approved-pitch list under a short TTL.
type Listing struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListing(rdb *redis.Client, ttl time.Duration) *Listing {
	return &Listing{rdb: rdb, ttl: ttl}
}

// GetApproved returns the cached listing, or ok=false on miss, decode
// failure, redis error, or nil cache.
func (l *Listing) GetApproved(ctx context.Context) ([]models.Pitch, bool) {
	if l == nil {
		return nil, false
	}
	raw, err := l.rdb.Get(ctx, approvedKey).Bytes()
	if err != nil {
		return nil, false
	}
	var pitches []models.Pitch
	if err := json.Unmarshal(raw, &pitches); err != nil {
		return nil, false
	}
	return pitches, true
}

// SetApproved stores the listing. Errors are swallowed: the cache is an
// optimization, never a dependency.
func (l *Listing) SetApproved(ctx context.Context, pitches []models.Pitch) {
	if l == nil {
		return
	}
	raw, err := json.Marshal(pitches)
	if err != nil {
		return
	}
	l.rdb.Set(ctx, approvedKey, raw, l.ttl)
}

// Invalidate drops the cached listing; called whenever a pitch changes state.
func (l *Listing) Invalidate(ctx context.Context) {
	if l == nil {
		return
	}
	l.rdb.Del(ctx, approvedKey)
}
