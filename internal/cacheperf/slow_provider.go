// Package cacheperf 支撑 cachebench：用带延迟的指标源对比报告缓存策略。
package cacheperf

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/d60-Lab/social-suite/internal/metrics"
	"github.com/d60-Lab/social-suite/internal/model"
)

// SlowProvider 给每次指标调用加固定延迟，模拟真实平台 API 的往返。
// Calls 统计穿透到指标源的次数，报告缓存命中时不增长
type SlowProvider struct {
	inner metrics.Provider
	delay time.Duration
	calls atomic.Int64
}

func NewSlowProvider(inner metrics.Provider, delay time.Duration) *SlowProvider {
	return &SlowProvider{inner: inner, delay: delay}
}

// Calls 穿透调用计数
func (p *SlowProvider) Calls() int64 { return p.calls.Load() }

// ResetCalls 清零计数，分段压测用
func (p *SlowProvider) ResetCalls() { p.calls.Store(0) }

func (p *SlowProvider) wait() {
	p.calls.Add(1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}

func (p *SlowProvider) AccountMetrics(ctx context.Context, platform model.Platform, timeframe string) (metrics.AccountMetrics, error) {
	p.wait()
	return p.inner.AccountMetrics(ctx, platform, timeframe)
}

func (p *SlowProvider) Demographics(ctx context.Context, platform model.Platform) (metrics.Demographics, error) {
	p.wait()
	return p.inner.Demographics(ctx, platform)
}

func (p *SlowProvider) FollowerGrowth(ctx context.Context, platform model.Platform, days int) (metrics.GrowthStats, error) {
	p.wait()
	return p.inner.FollowerGrowth(ctx, platform, days)
}

func (p *SlowProvider) EngagementStats(ctx context.Context, platform model.Platform, days int) (metrics.EngagementStats, error) {
	p.wait()
	return p.inner.EngagementStats(ctx, platform, days)
}

func (p *SlowProvider) CompetitorMetrics(ctx context.Context, platforms []string) (map[string]model.CompetitorMetrics, error) {
	p.wait()
	return p.inner.CompetitorMetrics(ctx, platforms)
}

func (p *SlowProvider) CompetitorStrategy(ctx context.Context, name string) (metrics.CompetitorStrategy, error) {
	p.wait()
	return p.inner.CompetitorStrategy(ctx, name)
}

func (p *SlowProvider) CompetitorStanding(ctx context.Context, name string) (metrics.CompetitorStanding, error) {
	p.wait()
	return p.inner.CompetitorStanding(ctx, name)
}
