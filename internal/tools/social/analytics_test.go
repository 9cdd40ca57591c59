package social

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-suite/internal/cache"
	"github.com/d60-Lab/social-suite/internal/service"
)

func TestGetAnalyticsToolSinglePlatform(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t, newTestDeps(t))

	result, err := reg.Execute(ctx, "get_analytics", map[string]any{"platform": "twitter"})
	require.NoError(t, err)

	out := result.Output
	assert.Contains(t, out, "📊 SOCIAL MEDIA ANALYTICS REPORT")
	assert.Contains(t, out, "📅 Timeframe: Last 7d")
	assert.Contains(t, out, "📈 Metrics: All")
	assert.Contains(t, out, "📱 TWITTER:")
	assert.Contains(t, out, "  💬 Engagement: ")
	assert.Contains(t, out, "  👥 Reach: ")
	assert.Contains(t, out, "  👁️ Impressions: ")
	assert.Contains(t, out, "  👤 Followers: ")
	assert.Contains(t, out, "  📊 Engagement Rate: ")
	assert.NotContains(t, out, "🎯 TOTAL ACROSS ALL PLATFORMS:")
	assert.Contains(t, out, "💡 INSIGHTS & RECOMMENDATIONS:")
	assert.Contains(t, out, "🎯 Focus on your best-performing platforms for maximum ROI.")
	assert.Contains(t, out, "Note: This is demo data.")
}

func TestGetAnalyticsToolAllPlatformsAddsTotals(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t, newTestDeps(t))

	result, err := reg.Execute(ctx, "get_analytics", map[string]any{
		"platform":  "all",
		"timeframe": "30d",
	})
	require.NoError(t, err)

	out := result.Output
	for _, block := range []string{"📱 TWITTER:", "📱 FACEBOOK:", "📱 INSTAGRAM:", "📱 LINKEDIN:"} {
		assert.Contains(t, out, block)
	}
	assert.Contains(t, out, "📅 Timeframe: Last 30d")
	assert.Contains(t, out, "🎯 TOTAL ACROSS ALL PLATFORMS:")
	assert.Contains(t, out, "  💬 Total Engagement: ")
	assert.Contains(t, out, "  📊 Overall Engagement Rate: ")
}

func TestGetAnalyticsToolMetricFilter(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t, newTestDeps(t))

	result, err := reg.Execute(ctx, "get_analytics", map[string]any{
		"platform":    "instagram",
		"metric_type": "reach",
	})
	require.NoError(t, err)

	out := result.Output
	assert.Contains(t, out, "📈 Metrics: Reach")
	assert.Contains(t, out, "  👥 Reach: ")
	assert.NotContains(t, out, "  💬 Engagement: ")
	assert.NotContains(t, out, "  👤 Followers: ")
	// 单平台互动率始终基于原始数据给出
	assert.Contains(t, out, "  📊 Engagement Rate: ")
	// 互动未被选中时不给互动率评语
	assert.NotContains(t, out, "✅ Great engagement rate!")
	assert.NotContains(t, out, "📈 Good engagement rate.")
	assert.NotContains(t, out, "📊 Low engagement rate.")
}

func TestGetAnalyticsToolUsesCache(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	fc := newFakeCache()
	d.Cache = fc
	reg := newTestRegistry(t, d)

	first, err := reg.Execute(ctx, "get_analytics", map[string]any{"platform": "twitter"})
	require.NoError(t, err)
	second, err := reg.Execute(ctx, "get_analytics", map[string]any{"platform": "twitter"})
	require.NoError(t, err)

	// 伪随机指标源两次会给出不同数字，命中缓存则完全一致
	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t, 1, fc.sets)
	assert.Equal(t, 1, fc.hits)
	assert.True(t, fc.has(cache.AnalyticsKey("twitter", "7d", "all")))
}

func TestGetAnalyticsToolRejectsBadOptions(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t, newTestDeps(t))

	for _, args := range []map[string]any{
		{"platform": "myspace"},
		{"platform": "twitter", "timeframe": "1y"},
		{"platform": "twitter", "metric_type": "clicks"},
	} {
		_, err := reg.Execute(ctx, "get_analytics", args)
		var optErr *service.InvalidOptionError
		assert.ErrorAs(t, err, &optErr, "args %v", args)
	}
}
