package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/d60-Lab/social-suite/internal/cache"
	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
)

func newGetAnalyticsTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "get_analytics",
		Description: "Get analytics and engagement metrics for social media accounts",
		Category:    tools.CategoryCore,
		Schema: tools.Schema{
			Required: []string{"platform"},
			Properties: map[string]tools.Property{
				"platform":    {Type: "string", Description: "Platform to analyze: twitter, facebook, instagram, linkedin, all"},
				"timeframe":   {Type: "string", Description: "Timeframe: 7d, 30d, 90d", Default: "7d"},
				"metric_type": {Type: "string", Description: "Metric type: engagement, reach, impressions, followers, all", Default: "all"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			platform := strings.ToLower(tools.StringArg(args, "platform", ""))
			timeframe := tools.StringArg(args, "timeframe", "7d")
			metricType := tools.StringArg(args, "metric_type", "all")

			key := cache.AnalyticsKey(platform, timeframe, metricType)
			if d.Cache != nil {
				if cached, ok := d.Cache.Get(ctx, key); ok {
					return cached, nil
				}
			}

			report, err := d.Analytics.Report(ctx, platform, timeframe, metricType)
			if err != nil {
				return "", err
			}

			rendered := renderAnalyticsReport(report)
			if d.Cache != nil {
				d.Cache.Set(ctx, key, rendered)
			}
			return rendered, nil
		},
	}
}

// renderAnalyticsReport 汇总行只累计被选中的指标，
// 单平台互动率则始终基于原始曝光数据计算
func renderAnalyticsReport(r *service.AnalyticsReport) string {
	wants := func(metric string) bool { return r.MetricType == "all" || r.MetricType == metric }

	var b strings.Builder
	b.WriteString("📊 SOCIAL MEDIA ANALYTICS REPORT\n")
	fmt.Fprintf(&b, "📅 Timeframe: Last %s\n", r.Timeframe)
	fmt.Fprintf(&b, "📈 Metrics: %s\n\n", title(r.MetricType))

	var totalEngagement, totalReach, totalImpressions, totalFollowers int
	for _, p := range r.Platforms {
		fmt.Fprintf(&b, "📱 %s:\n", strings.ToUpper(string(p.Platform)))
		if wants("engagement") {
			fmt.Fprintf(&b, "  💬 Engagement: %s\n", comma(p.Metrics.Engagement))
			totalEngagement += p.Metrics.Engagement
		}
		if wants("reach") {
			fmt.Fprintf(&b, "  👥 Reach: %s\n", comma(p.Metrics.Reach))
			totalReach += p.Metrics.Reach
		}
		if wants("impressions") {
			fmt.Fprintf(&b, "  👁️ Impressions: %s\n", comma(p.Metrics.Impressions))
			totalImpressions += p.Metrics.Impressions
		}
		if wants("followers") {
			fmt.Fprintf(&b, "  👤 Followers: %s\n", comma(p.Metrics.Followers))
			totalFollowers += p.Metrics.Followers
		}
		if p.Metrics.Impressions > 0 {
			fmt.Fprintf(&b, "  📊 Engagement Rate: %.2f%%\n", p.EngagementRate())
		}
		b.WriteString("\n")
	}

	if r.Multiple() {
		b.WriteString("🎯 TOTAL ACROSS ALL PLATFORMS:\n")
		if wants("engagement") {
			fmt.Fprintf(&b, "  💬 Total Engagement: %s\n", comma(totalEngagement))
		}
		if wants("reach") {
			fmt.Fprintf(&b, "  👥 Total Reach: %s\n", comma(totalReach))
		}
		if wants("impressions") {
			fmt.Fprintf(&b, "  👁️ Total Impressions: %s\n", comma(totalImpressions))
		}
		if wants("followers") {
			fmt.Fprintf(&b, "  👤 Total Followers: %s\n", comma(totalFollowers))
		}
		if totalImpressions > 0 {
			fmt.Fprintf(&b, "  📊 Overall Engagement Rate: %.2f%%\n", float64(totalEngagement)/float64(totalImpressions)*100)
		}
	}

	b.WriteString("\n💡 INSIGHTS & RECOMMENDATIONS:\n")
	if totalEngagement > 0 && totalImpressions > 0 {
		switch rate := float64(totalEngagement) / float64(totalImpressions) * 100; {
		case rate > 3:
			b.WriteString("✅ Great engagement rate! Your content resonates well with your audience.\n")
		case rate > 1:
			b.WriteString("📈 Good engagement rate. Consider experimenting with different content types.\n")
		default:
			b.WriteString("📊 Low engagement rate. Try more interactive content and better timing.\n")
		}
	}
	b.WriteString("🎯 Focus on your best-performing platforms for maximum ROI.\n")
	b.WriteString("📅 Post consistently during peak engagement hours.\n")
	b.WriteString("🔄 Engage with your audience to build stronger relationships.\n")
	b.WriteString("\nNote: This is demo data. In production, this would connect to actual social media APIs for real-time analytics.")
	return b.String()
}
