package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"interview-availability/internal/domain/availability"
	"interview-availability/internal/infra"
	"interview-availability/internal/pkg/config"
	"interview-availability/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// KV is the subset of *redis.Client the cache needs.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// TemplateCache is a read-through cache in front of a TemplateReadStore.
// Redis errors never fail a read; the request falls through to the store.
type TemplateCache struct {
	next   queries.TemplateReadStore
	kv     KV
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

func NewTemplateCache(next queries.TemplateReadStore, kv KV, cfg config.RedisConfig, logger *slog.Logger) *TemplateCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateCache{
		next:   next,
		kv:     kv,
		ttl:    cfg.TemplateTTL,
		prefix: cfg.KeyPrefix,
		logger: logger,
	}
}

type cachedWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type cachedTemplate struct {
	Day         string         `json:"day"`
	IsAvailable bool           `json:"is_available"`
	Windows     []cachedWindow `json:"windows"`
}

func (c *TemplateCache) FindDayTemplate(ctx context.Context, resourceID string, day time.Weekday) (*availability.DayTemplate, error) {
	key := c.dayKey(resourceID, day)

	var cached cachedTemplate
	if c.load(ctx, key, &cached) {
		tmpl, err := fromCached(cached)
		if err == nil {
			return tmpl, nil
		}
		c.logger.Warn("discarding undecodable cached template", "key", key, "error", err)
	}

	tmpl, err := c.next.FindDayTemplate(ctx, resourceID, day)
	if err != nil || tmpl == nil {
		return tmpl, err
	}

	c.store(ctx, key, toCached(tmpl))
	return tmpl, nil
}

func (c *TemplateCache) FindWeekTemplates(ctx context.Context, resourceID string) ([]*availability.DayTemplate, error) {
	key := c.weekKey(resourceID)

	var cached []cachedTemplate
	if c.load(ctx, key, &cached) {
		week, err := fromCachedWeek(cached)
		if err == nil {
			return week, nil
		}
		c.logger.Warn("discarding undecodable cached week", "key", key, "error", err)
	}

	week, err := c.next.FindWeekTemplates(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	entries := make([]cachedTemplate, 0, len(week))
	for _, tmpl := range week {
		entries = append(entries, toCached(tmpl))
	}
	c.store(ctx, key, entries)
	return week, nil
}

func (c *TemplateCache) dayKey(resourceID string, day time.Weekday) string {
	return fmt.Sprintf("%s:template:%s:%s", c.prefix, resourceID, day)
}

func (c *TemplateCache) weekKey(resourceID string) string {
	return fmt.Sprintf("%s:week:%s", c.prefix, resourceID)
}

func (c *TemplateCache) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.kv.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("template cache read failed", "key", key, "error", infra.WrapRepoErr("redis get", err, infra.KindCacheFailure))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("template cache entry is not valid JSON", "key", key, "error", err)
		return false
	}
	return true
}

func (c *TemplateCache) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to encode template for cache", "key", key, "error", err)
		return
	}
	if err := c.kv.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("template cache write failed", "key", key, "error", infra.WrapRepoErr("redis set", err, infra.KindCacheFailure))
	}
}

func toCached(tmpl *availability.DayTemplate) cachedTemplate {
	windows := make([]cachedWindow, 0, len(tmpl.Windows))
	for _, w := range tmpl.Windows {
		windows = append(windows, cachedWindow{Start: w.Start.String(), End: w.End.String()})
	}
	return cachedTemplate{
		Day:         tmpl.Day.String(),
		IsAvailable: tmpl.IsAvailable,
		Windows:     windows,
	}
}

func fromCached(c cachedTemplate) (*availability.DayTemplate, error) {
	day, err := availability.ParseWeekday(c.Day)
	if err != nil {
		return nil, err
	}

	windows := make([]availability.WallClockWindow, 0, len(c.Windows))
	for _, cw := range c.Windows {
		start, err := availability.ParseTimeOfDay(cw.Start)
		if err != nil {
			return nil, err
		}
		end, err := availability.ParseTimeOfDay(cw.End)
		if err != nil {
			return nil, err
		}
		w, err := availability.NewWallClockWindow(start, end)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	return &availability.DayTemplate{
		Day:         day,
		IsAvailable: c.IsAvailable,
		Windows:     windows,
	}, nil
}

func fromCachedWeek(entries []cachedTemplate) ([]*availability.DayTemplate, error) {
	week := make([]*availability.DayTemplate, 0, len(entries))
	for _, e := range entries {
		tmpl, err := fromCached(e)
		if err != nil {
			return nil, err
		}
		week = append(week, tmpl)
	}
	return week, nil
}

func ReadyCheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return fmt.Errorf("redis not configured")
		}
		return client.Ping(ctx).Err()
	}
}
