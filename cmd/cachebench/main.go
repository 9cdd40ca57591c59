package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/social-suite/internal/cache"
	"github.com/d60-Lab/social-suite/internal/cacheperf"
	"github.com/d60-Lab/social-suite/internal/metrics"
	"github.com/d60-Lab/social-suite/internal/repository"
	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
	"github.com/d60-Lab/social-suite/internal/tools/social"
)

// 对比 get_analytics 在无缓存 / Redis 报告缓存两种路径下的吞吐与穿透次数。
// REDIS_ADDR 未设置时内嵌 miniredis，无外部依赖即可运行

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func main() {
	N := envInt("N", 500)
	delay := 20 * time.Millisecond
	if s := os.Getenv("PROVIDER_DELAY_MS"); s != "" {
		if ms, err := strconv.Atoi(s); err == nil && ms >= 0 {
			delay = time.Duration(ms) * time.Millisecond
		}
	}

	fmt.Printf("N=%d, PROVIDER_DELAY=%v\n\n", N, delay)

	// 请求键空间：4 平台 × 3 时间窗
	type query struct{ platform, timeframe string }
	queries := make([]query, 0, 12)
	for _, p := range []string{"twitter", "facebook", "instagram", "linkedin"} {
		for _, tf := range []string{"7d", "30d", "90d"} {
			queries = append(queries, query{p, tf})
		}
	}

	run := func(name string, reg *tools.Registry, slow *cacheperf.SlowProvider) {
		ctx := context.Background()
		rng := rand.New(rand.NewSource(1))
		lat := make([]time.Duration, 0, N)
		t0 := time.Now()
		for i := 0; i < N; i++ {
			q := queries[rng.Intn(len(queries))]
			st := time.Now()
			_ = must(reg.Execute(ctx, "get_analytics", map[string]any{
				"platform":  q.platform,
				"timeframe": q.timeframe,
			}))
			lat = append(lat, time.Since(st))
		}
		total := time.Since(t0)
		fmt.Printf("===== %s =====\n", name)
		fmt.Printf("total=%v, qps=%.1f, p50=%v, p95=%v, p99=%v, provider calls=%d\n\n",
			total, float64(N)/total.Seconds(), pct(lat, 0.50), pct(lat, 0.95), pct(lat, 0.99), slow.Calls())
	}

	// 无缓存：每次请求都重新生成报告
	slowPlain := cacheperf.NewSlowProvider(metrics.NewMockProvider(42), delay)
	run("no cache", newRegistry(slowPlain, nil), slowPlain)

	// Redis 报告缓存
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		mr := must(miniredis.Run())
		defer mr.Close()
		addr = mr.Addr()
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	reportCache := cache.NewRedisReportCache(client, 5*time.Minute)

	slowCached := cacheperf.NewSlowProvider(metrics.NewMockProvider(42), delay)
	run("redis cache", newRegistry(slowCached, reportCache), slowCached)

	hits, misses := reportCache.Counters()
	fmt.Printf("cache hits=%d, misses=%d, hit rate=%.1f%%\n",
		hits, misses, float64(hits)/float64(hits+misses)*100)
}

func newRegistry(provider metrics.Provider, c cache.ReportCache) *tools.Registry {
	dir := must(os.MkdirTemp("", "cachebench-*"))
	reg := tools.NewRegistry()
	social.RegisterAll(reg, social.Deps{
		Scheduler:   service.NewSchedulerService(repository.NewFilePostRepository(dir)),
		Hashtags:    service.NewHashtagService(42),
		Analytics:   service.NewAnalyticsService(provider),
		Trends:      service.NewTrendsService(),
		Audience:    service.NewAudienceService(provider),
		Competitors: service.NewCompetitorService(repository.NewFileCompetitorRepository(dir), provider),
		Content:     service.NewContentService(42),
		Cache:       c,
	})
	return reg
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}
