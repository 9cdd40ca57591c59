package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/d60-Lab/social-suite/internal/metrics"
	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
)

var audienceInsightTypes = []string{"demographics", "growth", "engagement", "report"}

func newAudienceInsightsTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "get_audience_insights",
		Description: "Get detailed audience insights and demographics",
		Category:    tools.CategoryEnhanced,
		Schema: tools.Schema{
			Required: []string{"platform"},
			Properties: map[string]tools.Property{
				"platform":     {Type: "string", Description: "Platform to analyze: twitter, facebook, instagram, linkedin"},
				"insight_type": {Type: "string", Description: "Type: demographics, growth, engagement, report", Default: "report"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			platform := tools.StringArg(args, "platform", "")
			insightType := strings.ToLower(tools.StringArg(args, "insight_type", "report"))

			var body string
			switch insightType {
			case "demographics":
				demo, err := d.Audience.Demographics(ctx, platform)
				if err != nil {
					return "", err
				}
				body = renderDemographics(demo)
			case "growth":
				growth, err := d.Audience.Growth(ctx, platform)
				if err != nil {
					return "", err
				}
				body = renderGrowth(growth)
			case "engagement":
				eng, err := d.Audience.Engagement(ctx, platform)
				if err != nil {
					return "", err
				}
				body = renderEngagement(eng)
			case "report":
				report, err := d.Audience.Report(ctx, platform)
				if err != nil {
					return "", err
				}
				body = renderAudienceReport(report)
			default:
				return "", &service.InvalidOptionError{Field: "insight type", Value: insightType, Valid: audienceInsightTypes}
			}

			var b strings.Builder
			fmt.Fprintf(&b, "👥 AUDIENCE INSIGHTS for %s\n", strings.ToUpper(platform))
			fmt.Fprintf(&b, "📊 Analysis Type: %s\n\n", title(insightType))
			b.WriteString(body)
			b.WriteString("💡 Use these insights to optimize your content strategy and posting schedule!")
			return b.String(), nil
		},
	}
}

func renderDemographics(d *metrics.Demographics) string {
	var b strings.Builder
	b.WriteString("🎂 AGE DISTRIBUTION:\n")
	for _, s := range d.AgeGroups {
		fmt.Fprintf(&b, "   %s: %s%%\n", s.Label, num(s.Percent))
	}
	b.WriteString("\n👤 GENDER DISTRIBUTION:\n")
	for _, s := range d.Gender {
		fmt.Fprintf(&b, "   %s: %s%%\n", title(s.Label), num(s.Percent))
	}
	b.WriteString("\n🌍 TOP LOCATIONS:\n")
	locations := d.Locations
	if len(locations) > 5 {
		locations = locations[:5]
	}
	for _, s := range locations {
		fmt.Fprintf(&b, "   %s: %s%%\n", s.Label, num(s.Percent))
	}
	b.WriteString("\n")
	return b.String()
}

func renderGrowth(g *metrics.GrowthStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📈 FOLLOWER GROWTH (%d days):\n", g.PeriodDays)
	fmt.Fprintf(&b, "   Current Followers: %s\n", comma(g.FollowerCount))
	fmt.Fprintf(&b, "   Total Growth: %s\n", comma(g.Total))
	fmt.Fprintf(&b, "   Growth Rate: %s%%\n", num(g.Percentage))
	fmt.Fprintf(&b, "   Avg Daily Growth: %s\n\n", num(g.AverageDaily))
	return b.String()
}

func renderEngagement(e *metrics.EngagementStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💬 ENGAGEMENT METRICS (%d days):\n", e.PeriodDays)
	fmt.Fprintf(&b, "   Total Posts: %d\n", e.TotalPosts)
	fmt.Fprintf(&b, "   Avg Likes: %d\n", e.Metric("likes"))
	fmt.Fprintf(&b, "   Avg Comments: %d\n", e.Metric("comments"))
	fmt.Fprintf(&b, "   Avg Shares: %d\n", e.Metric("shares"))
	fmt.Fprintf(&b, "   Engagement Rate: %s%%\n\n", num(e.EngagementRate))

	if len(e.TopPosts) > 0 {
		b.WriteString("🏆 TOP PERFORMING POSTS:\n")
		top := e.TopPosts
		if len(top) > 3 {
			top = top[:3]
		}
		for _, p := range top {
			fmt.Fprintf(&b, "   📝 %s - %s%% engagement\n", p.PostID, num(p.EngagementRate))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderAudienceReport(r *service.AudienceReport) string {
	var b strings.Builder
	b.WriteString("📋 COMPREHENSIVE AUDIENCE REPORT:\n\n")
	fmt.Fprintf(&b, "📈 Current Followers: %s\n", comma(r.Growth.FollowerCount))
	fmt.Fprintf(&b, "📊 30-day Growth: %s (%s%%)\n\n", comma(r.Growth.Total), num(r.Growth.Percentage))
	if r.Insights != "" {
		b.WriteString("🤖 AI INSIGHTS:\n")
		b.WriteString(r.Insights)
		b.WriteString("\n\n")
	}
	return b.String()
}
