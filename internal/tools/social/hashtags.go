package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/d60-Lab/social-suite/internal/tools"
)

// 基础标签报告附带的平台最佳实践
var hashtagPlatformTips = map[string]string{
	"twitter": "• Keep hashtags concise and relevant\n" +
		"• Use 1-3 hashtags per tweet\n" +
		"• Mix trending and niche hashtags",
	"instagram": "• Use up to 30 hashtags for maximum reach\n" +
		"• Mix popular and niche hashtags\n" +
		"• Place hashtags in comments or at end of caption",
	"linkedin": "• Use 3-5 professional hashtags\n" +
		"• Focus on industry-relevant tags\n" +
		"• Avoid overly casual hashtags",
	"facebook": "• Use 1-2 hashtags sparingly\n" +
		"• Focus on branded or campaign hashtags\n" +
		"• Hashtags are less important on Facebook",
}

func newGenerateHashtagsTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "generate_hashtags",
		Description: "Generate relevant hashtags for social media content",
		Category:    tools.CategoryCore,
		Schema: tools.Schema{
			Required: []string{"content"},
			Properties: map[string]tools.Property{
				"content":  {Type: "string", Description: "Post content to analyze for hashtag generation"},
				"platform": {Type: "string", Description: "Target platform: twitter, instagram, linkedin, facebook", Default: "twitter"},
				"count":    {Type: "integer", Description: "Number of hashtags to generate (1-20)", Default: 5},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			content := tools.StringArg(args, "content", "")
			platform := tools.StringArg(args, "platform", "twitter")
			count := tools.IntArg(args, "count", 5)

			suggestion, err := d.Hashtags.Basic(ctx, content, platform, count)
			if err != nil {
				return "", err
			}

			keywords := suggestion.Keywords
			if len(keywords) > 5 {
				keywords = keywords[:5]
			}

			var b strings.Builder
			fmt.Fprintf(&b, "📱 Generated Hashtags for %s:\n\n", title(suggestion.Platform))
			b.WriteString(strings.Join(suggestion.Tags, "\n"))
			fmt.Fprintf(&b, "\n\n💡 %s Best Practices:\n", title(suggestion.Platform))
			b.WriteString(hashtagPlatformTips[suggestion.Platform])
			b.WriteString("\n\n🔍 Keywords extracted from your content:\n")
			b.WriteString(strings.Join(keywords, ", "))
			b.WriteString("\n\nNote: These hashtags are generated using content analysis. For best results, research current trending hashtags in your niche.")
			return b.String(), nil
		},
	}
}

func newAdvancedHashtagsTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "generate_advanced_hashtags",
		Description: "Generate advanced hashtags using trending analysis",
		Category:    tools.CategoryEnhanced,
		Schema: tools.Schema{
			Required: []string{"content"},
			Properties: map[string]tools.Property{
				"content":  {Type: "string", Description: "Post content to analyze for hashtag generation"},
				"platform": {Type: "string", Description: "Target platform: twitter, instagram, linkedin, facebook", Default: "twitter"},
				"count":    {Type: "integer", Description: "Number of hashtags to generate (1-30)", Default: 10},
				"strategy": {Type: "string", Description: "Strategy: trending, niche, mixed, branded", Default: "mixed"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			content := tools.StringArg(args, "content", "")
			platform := tools.StringArg(args, "platform", "twitter")
			count := tools.IntArg(args, "count", 10)
			strategy := tools.StringArg(args, "strategy", "mixed")

			result, err := d.Hashtags.Advanced(ctx, content, platform, count, strategy)
			if err != nil {
				return "", err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "🏷️ ADVANCED HASHTAGS for %s\n", strings.ToUpper(result.Platform))
			fmt.Fprintf(&b, "📝 Strategy: %s\n", title(result.Strategy))
			fmt.Fprintf(&b, "🎯 Generated: %d hashtags\n\n", len(result.Hashtags))

			if len(result.Hashtags) > 0 {
				b.WriteString("📋 HASHTAGS:\n")
				for _, tag := range result.Hashtags {
					fmt.Fprintf(&b, "   %s (%s)\n", tag.Tag, tag.Difficulty)
				}
				b.WriteString("\n")
			}

			keywords := result.Keywords
			if len(keywords) > 5 {
				keywords = keywords[:5]
			}
			b.WriteString("📊 ANALYSIS:\n")
			fmt.Fprintf(&b, "   🔑 Keywords: %s\n", strings.Join(keywords, ", "))
			fmt.Fprintf(&b, "   🎯 Topic: %s\n", result.Topic)
			fmt.Fprintf(&b, "   😊 Sentiment: %s\n\n", result.Sentiment)

			recs := result.Recommendations
			if len(recs) > 3 {
				recs = recs[:3]
			}
			if len(recs) > 0 {
				b.WriteString("💡 RECOMMENDATIONS:\n")
				for _, rec := range recs {
					fmt.Fprintf(&b, "   • %s\n", rec)
				}
				b.WriteString("\n")
			}

			fmt.Fprintf(&b, "🔮 Generated by: %s\n", strings.ToUpper(result.Method))
			b.WriteString("💡 Copy and paste these hashtags to maximize your post reach!")
			return b.String(), nil
		},
	}
}
