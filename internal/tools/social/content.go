package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/d60-Lab/social-suite/internal/tools"
)

func newContentSuggestionTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "create_content_suggestion",
		Description: "Create content suggestions for social media",
		Category:    tools.CategoryEnhanced,
		Schema: tools.Schema{
			Required: []string{"platform", "content_type", "topic"},
			Properties: map[string]tools.Property{
				"platform":     {Type: "string", Description: "Target platform: twitter, instagram, facebook, linkedin"},
				"content_type": {Type: "string", Description: "Content type: engagement, promotional, informative, trending"},
				"topic":        {Type: "string", Description: "Topic or theme for the content"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			platform := strings.ToLower(tools.StringArg(args, "platform", ""))
			contentType := strings.ToLower(tools.StringArg(args, "content_type", ""))
			topic := tools.StringArg(args, "topic", "")

			result, err := d.Content.Suggest(ctx, platform, contentType, topic)
			if err != nil {
				return "", err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "🤖 CONTENT SUGGESTIONS for %s\n", strings.ToUpper(result.Platform))
			fmt.Fprintf(&b, "📝 Type: %s\n", title(result.ContentType))
			fmt.Fprintf(&b, "🎯 Topic: %s\n\n", result.Topic)
			for i, suggestion := range result.Suggestions {
				fmt.Fprintf(&b, "%d. %s\n\n", i+1, suggestion)
			}
			fmt.Fprintf(&b, "🔮 Generated by: %s\n", strings.ToUpper(result.GeneratedBy))
			b.WriteString("💡 Tip: Customize these suggestions to match your brand voice!")
			return b.String(), nil
		},
	}
}

func newContentCalendarTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "create_content_calendar",
		Description: "Generate a content calendar for social media planning",
		Category:    tools.CategoryEnhanced,
		Schema: tools.Schema{
			Required: []string{"platform"},
			Properties: map[string]tools.Property{
				"platform":     {Type: "string", Description: "Target platform: twitter, instagram, facebook, linkedin"},
				"days":         {Type: "integer", Description: "Number of days to plan (1-30)", Default: 7},
				"focus_topics": {Type: "string", Description: "Comma-separated topics to focus on", Default: ""},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			platform := strings.ToLower(tools.StringArg(args, "platform", ""))
			days := tools.IntArg(args, "days", 7)
			focusTopics := splitTopics(tools.StringArg(args, "focus_topics", ""))

			calendar, err := d.Content.Calendar(ctx, platform, days, focusTopics)
			if err != nil {
				return "", err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "📅 CONTENT CALENDAR for %s\n", strings.ToUpper(calendar.Platform))
			fmt.Fprintf(&b, "⏰ Duration: %d days\n", calendar.TotalDays)
			if len(focusTopics) > 0 {
				fmt.Fprintf(&b, "🎯 Focus Topics: %s\n", strings.Join(focusTopics, ", "))
			}
			b.WriteString("\n")

			for _, day := range calendar.Days {
				fmt.Fprintf(&b, "📅 Day %d:\n", day.Day)
				fmt.Fprintf(&b, "   📝 Type: %s\n", day.ContentType)
				fmt.Fprintf(&b, "   🎯 Topic: %s\n", day.Topic)
				fmt.Fprintf(&b, "   💡 Suggestion: %s\n", day.SuggestedPost)
				fmt.Fprintf(&b, "   ⏰ Best Time: %s\n\n", day.BestTime)
			}

			fmt.Fprintf(&b, "🔮 Generated by: %s\n", strings.ToUpper(calendar.GeneratedBy))
			b.WriteString("💡 Tip: Adapt these suggestions to your brand and current events!")
			return b.String(), nil
		},
	}
}

// splitTopics 逗号切分并去掉空白项
func splitTopics(csv string) []string {
	if csv == "" {
		return nil
	}
	out := make([]string, 0, 4)
	for _, raw := range strings.Split(csv, ",") {
		if topic := strings.TrimSpace(raw); topic != "" {
			out = append(out, topic)
		}
	}
	return out
}
