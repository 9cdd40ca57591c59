package service

import (
	"context"
	"strings"

	"github.com/d60-Lab/social-suite/internal/metrics"
	"github.com/d60-Lab/social-suite/internal/model"
)

var (
	analyticsPlatforms = []string{"twitter", "facebook", "instagram", "linkedin", "all"}
	analyticsTimeframe = []string{"7d", "30d", "90d"}
	analyticsMetrics   = []string{"engagement", "reach", "impressions", "followers", "all"}
)

// PlatformAnalytics 单平台指标
type PlatformAnalytics struct {
	Platform model.Platform
	Metrics  metrics.AccountMetrics
}

// EngagementRate 互动率（百分比）；无曝光时为 0
func (p PlatformAnalytics) EngagementRate() float64 {
	if p.Metrics.Impressions <= 0 {
		return 0
	}
	return float64(p.Metrics.Engagement) / float64(p.Metrics.Impressions) * 100
}

// AnalyticsReport 账号指标报告，platform=all 时包含全部平台
type AnalyticsReport struct {
	Timeframe  string
	MetricType string
	Platforms  []PlatformAnalytics
}

// Multiple 是否为多平台汇总
func (r *AnalyticsReport) Multiple() bool { return len(r.Platforms) > 1 }

// AnalyticsService 账号指标服务
type AnalyticsService interface {
	Report(ctx context.Context, platform, timeframe, metricType string) (*AnalyticsReport, error)
}

type analyticsService struct {
	provider metrics.Provider
}

func NewAnalyticsService(provider metrics.Provider) AnalyticsService {
	return &analyticsService{provider: provider}
}

func (s *analyticsService) Report(ctx context.Context, platform, timeframe, metricType string) (*AnalyticsReport, error) {
	p := strings.ToLower(platform)
	if !containsString(analyticsPlatforms, p) {
		return nil, &InvalidOptionError{Field: "platform", Value: platform, Valid: analyticsPlatforms}
	}
	if !containsString(analyticsTimeframe, timeframe) {
		return nil, &InvalidOptionError{Field: "timeframe", Value: timeframe, Valid: analyticsTimeframe}
	}
	if !containsString(analyticsMetrics, metricType) {
		return nil, &InvalidOptionError{Field: "metric type", Value: metricType, Valid: analyticsMetrics}
	}

	targets := []model.Platform{model.Platform(p)}
	if p == "all" {
		targets = model.AllPlatforms()
	}

	report := &AnalyticsReport{Timeframe: timeframe, MetricType: metricType}
	for _, target := range targets {
		m, err := s.provider.AccountMetrics(ctx, target, timeframe)
		if err != nil {
			return nil, err
		}
		report.Platforms = append(report.Platforms, PlatformAnalytics{Platform: target, Metrics: m})
	}
	return report, nil
}
