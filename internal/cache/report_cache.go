package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL 报告缓存默认过期时间
const DefaultTTL = 5 * time.Minute

// ReportCache 渲染后报告文本的读写缓存。读写失败按未命中处理，不向上传播。
type ReportCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, report string)
}

// AnalyticsKey 数据分析报告缓存键
func AnalyticsKey(platform, timeframe, metricType string) string {
	return fmt.Sprintf("analytics:%s:%s:%s", platform, timeframe, metricType)
}

// TrendsKey 热门趋势报告缓存键
func TrendsKey(platform, category, location string) string {
	return fmt.Sprintf("trends:%s:%s:%s", platform, category, location)
}

// RedisReportCache 基于 Redis 的报告缓存
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisReportCache 创建缓存，ttl<=0 时使用 DefaultTTL
func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisReportCache{client: client, ttl: ttl}
}

func (c *RedisReportCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		c.misses.Add(1)
		return "", false
	}
	c.hits.Add(1)
	return val, true
}

func (c *RedisReportCache) Set(ctx context.Context, key, report string) {
	_ = c.client.Set(ctx, key, report, c.ttl).Err()
}

// Counters 返回命中与未命中计数
func (c *RedisReportCache) Counters() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
