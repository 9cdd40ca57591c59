package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/d60-Lab/social-suite/internal/cache"
	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
)

// 趋势报告的平台打法建议（未知平台回落 general）
var trendStrategyTips = map[string][]string{
	"twitter": {
		"Join trending conversations with thoughtful replies",
		"Use trending hashtags in your tweets",
		"Share quick takes on breaking news",
		"Retweet with added commentary",
	},
	"instagram": {
		"Create visually appealing posts about trending topics",
		"Use trending hashtags in your posts",
		"Share Stories with trending stickers",
		"Create Reels about popular trends",
	},
	"general": {
		"Adapt trending topics to your niche",
		"Create educational content around trends",
		"Share your unique perspective on popular topics",
		"Engage with trending conversations authentically",
	},
}

func newGetTrendingTopicsTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "get_trending_topics",
		Description: "Track trending topics and suggest content ideas",
		Category:    tools.CategoryCore,
		Schema: tools.Schema{
			Properties: map[string]tools.Property{
				"platform": {Type: "string", Description: "Platform to check trends: twitter, instagram, general", Default: "general"},
				"category": {Type: "string", Description: "Category: technology, business, entertainment, sports, all", Default: "all"},
				"location": {Type: "string", Description: "Location for localized trends: US, UK, IN, global", Default: "global"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			platform := strings.ToLower(tools.StringArg(args, "platform", "general"))
			category := strings.ToLower(tools.StringArg(args, "category", "all"))
			location := strings.ToUpper(tools.StringArg(args, "location", "global"))

			key := cache.TrendsKey(platform, category, location)
			if d.Cache != nil {
				if cached, ok := d.Cache.Get(ctx, key); ok {
					return cached, nil
				}
			}

			report, err := d.Trends.Trending(ctx, platform, category, location)
			if err != nil {
				return "", err
			}

			rendered := renderTrendsReport(report)
			if d.Cache != nil {
				d.Cache.Set(ctx, key, rendered)
			}
			return rendered, nil
		},
	}
}

func renderTrendsReport(r *service.TrendsReport) string {
	var b strings.Builder
	b.WriteString("🔥 TRENDING TOPICS REPORT\n")
	fmt.Fprintf(&b, "📱 Platform: %s\n", title(r.Platform))
	fmt.Fprintf(&b, "📂 Category: %s\n", title(r.Category))
	fmt.Fprintf(&b, "🌍 Location: %s\n\n", r.Location)

	b.WriteString("📈 CURRENT TRENDING TOPICS:\n")
	for i, topic := range r.Topics {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, topic)
	}

	b.WriteString("\n💡 CONTENT IDEAS BASED ON TRENDS:\n")
	ideas := []string{
		"Share your perspective on " + topicOr(r.Topics, 0, "current trends"),
		"Create a how-to guide related to " + topicOr(r.Topics, 1, "trending topics"),
		"Start a discussion about " + topicOr(r.Topics, 2, "industry trends"),
		"Share behind-the-scenes content related to trending topics",
		"Create a poll asking your audience about their opinions on current trends",
	}
	for i, idea := range ideas {
		fmt.Fprintf(&b, "%d. %s\n", i+1, idea)
	}

	tips, ok := trendStrategyTips[r.Platform]
	if !ok {
		tips = trendStrategyTips["general"]
	}
	fmt.Fprintf(&b, "\n🎯 %s STRATEGY TIPS:\n", strings.ToUpper(r.Platform))
	for _, tip := range tips {
		fmt.Fprintf(&b, "• %s\n", tip)
	}

	b.WriteString("\n⏰ TIMING RECOMMENDATIONS:\n")
	b.WriteString("• Post about trends while they're still hot (within 24-48 hours)\n")
	b.WriteString("• Monitor trend velocity - some trends peak quickly\n")
	b.WriteString("• Plan content calendar around predictable trends (holidays, events)\n")
	b.WriteString("• Set up alerts for trends in your industry\n")
	b.WriteString("\nNote: This is demo data. In production, this would connect to real-time trend APIs for current trending topics.")
	return b.String()
}

// topicOr 越界时的兜底话题
func topicOr(topics []string, i int, fallback string) string {
	if i < len(topics) {
		return topics[i]
	}
	return fallback
}
