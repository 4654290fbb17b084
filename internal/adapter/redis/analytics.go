// Package redis keeps usage counters in Redis hashes. It provides only the
// analytics capability; the rest of the backend comes from the main driver.
package redis

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/brandvoice-backend/internal/config"
	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// incrementScript bumps the count and assigns a stable id on first use, in a
// single atomic step.
//
//	KEYS[1] counts hash, KEYS[2] ids hash, KEYS[3] id sequence
//	ARGV[1] field "brand|content_type"
var incrementScript = goredis.NewScript(`
local count = redis.call('HINCRBY', KEYS[1], ARGV[1], 1)
local id = redis.call('HGET', KEYS[2], ARGV[1])
if not id then
  id = redis.call('INCR', KEYS[3])
  redis.call('HSET', KEYS[2], ARGV[1], id)
end
return {tonumber(id), count}
`)

const fieldSep = "|"

// AnalyticsRepo implements storage.AnalyticsRepository on Redis.
type AnalyticsRepo struct {
	client    goredis.UniversalClient
	countsKey string
	idsKey    string
	seqKey    string
}

// NewAnalyticsRepo uses client with keys under prefix.
func NewAnalyticsRepo(client goredis.UniversalClient, prefix string) *AnalyticsRepo {
	if prefix == "" {
		prefix = "brandvoice"
	}
	base := prefix + ":analytics:"
	return &AnalyticsRepo{
		client:    client,
		countsKey: base + "counts",
		idsKey:    base + "ids",
		seqKey:    base + "seq",
	}
}

// Open dials Redis from cfg and verifies the connection.
func Open(ctx context.Context, cfg config.RedisConfig) (*AnalyticsRepo, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return NewAnalyticsRepo(client, cfg.KeyPrefix), nil
}

// Increment atomically adds one to the (brand, ct) counter.
func (r *AnalyticsRepo) Increment(ctx context.Context, brand domain.BrandVoice, ct domain.ContentType) (*domain.AnalyticsCounter, error) {
	field := string(brand) + fieldSep + string(ct)

	res, err := incrementScript.Run(ctx, r.client,
		[]string{r.countsKey, r.idsKey, r.seqKey}, field).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("analytics_counter %s/%s: %w", brand, ct, err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("analytics_counter %s/%s: unexpected script reply %v", brand, ct, res)
	}

	return &domain.AnalyticsCounter{
		ID:          res[0],
		BrandVoice:  brand,
		ContentType: ct,
		Count:       res[1],
	}, nil
}

// List returns every counter ordered by ID.
func (r *AnalyticsRepo) List(ctx context.Context) ([]domain.AnalyticsCounter, error) {
	pipe := r.client.Pipeline()
	countsCmd := pipe.HGetAll(ctx, r.countsKey)
	idsCmd := pipe.HGetAll(ctx, r.idsKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("analytics_counters: %w", err)
	}

	ids := idsCmd.Val()
	out := make([]domain.AnalyticsCounter, 0, len(countsCmd.Val()))
	for field, raw := range countsCmd.Val() {
		brand, ct, ok := strings.Cut(field, fieldSep)
		if !ok {
			continue
		}
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("analytics_counter %s: parse count: %w", field, err)
		}
		id, err := strconv.ParseInt(ids[field], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("analytics_counter %s: parse id: %w", field, err)
		}
		out = append(out, domain.AnalyticsCounter{
			ID:          id,
			BrandVoice:  domain.BrandVoice(brand),
			ContentType: domain.ContentType(ct),
			Count:       count,
		})
	}

	slices.SortFunc(out, func(a, b domain.AnalyticsCounter) int {
		return int(a.ID - b.ID)
	})
	return out, nil
}

// Ping checks the Redis connection.
func (r *AnalyticsRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *AnalyticsRepo) Close() error {
	return r.client.Close()
}
