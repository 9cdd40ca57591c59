package social

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/d60-Lab/social-suite/internal/model"
	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
)

var manageActions = []string{"list", "cancel", "modify"}

// modifyUnsupportedText modify 动作的固定回复（该能力是有意的占位）
const modifyUnsupportedText = "🚧 Modify functionality is not yet implemented. " +
	"Please cancel the existing post and create a new one with updated details."

func newSchedulePostTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "schedule_post",
		Description: "Schedule a post across multiple social media platforms",
		Category:    tools.CategoryCore,
		Schema: tools.Schema{
			Required: []string{"content", "platforms", "schedule_time"},
			Properties: map[string]tools.Property{
				"content":       {Type: "string", Description: "Post content/text to schedule"},
				"platforms":     {Type: "string", Description: "Comma-separated platforms: twitter,facebook,instagram,linkedin"},
				"schedule_time": {Type: "string", Description: "Schedule time in YYYY-MM-DD HH:MM format (24-hour)"},
				"media_url":     {Type: "string", Description: "Optional media URL to attach (image/video)", Default: ""},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			content := tools.StringArg(args, "content", "")
			platforms := tools.StringArg(args, "platforms", "")
			scheduleTime := tools.StringArg(args, "schedule_time", "")
			mediaURL := tools.StringArg(args, "media_url", "")

			post, countdown, err := d.Scheduler.Schedule(ctx, content, platforms, scheduleTime, mediaURL)
			if err != nil {
				return "", err
			}

			var b strings.Builder
			b.WriteString("✅ Post scheduled successfully!\n\n")
			fmt.Fprintf(&b, "📝 Content: %q\n", truncate(post.Content, 50))
			fmt.Fprintf(&b, "📱 Platforms: %s\n", strings.Join(model.PlatformNames(post.Platforms), ", "))
			fmt.Fprintf(&b, "⏰ Scheduled for: %s\n", post.ScheduleTime)
			fmt.Fprintf(&b, "🕐 Time until posting: %s\n", countdown.Long())
			fmt.Fprintf(&b, "🆔 Post ID: %s\n", post.ID)
			b.WriteString("\nNote: This is a demo implementation. In production, this would integrate with actual social media APIs to post automatically.")
			return b.String(), nil
		},
	}
}

func newManageScheduledPostsTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "manage_scheduled_posts",
		Description: "View and manage scheduled posts",
		Category:    tools.CategoryCore,
		Schema: tools.Schema{
			Properties: map[string]tools.Property{
				"action":  {Type: "string", Description: "Action: list, cancel, modify", Default: "list"},
				"post_id": {Type: "string", Description: "Post ID for cancel/modify actions", Default: ""},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			action := strings.ToLower(tools.StringArg(args, "action", "list"))
			postID := tools.StringArg(args, "post_id", "")

			switch action {
			case "list":
				return renderScheduledPosts(ctx, d)
			case "cancel":
				if postID == "" {
					return "", fmt.Errorf("%w: post_id is required for cancel action", tools.ErrInvalidArgument)
				}
				if _, err := d.Scheduler.Cancel(ctx, postID); err != nil {
					return "", err
				}
				return fmt.Sprintf("✅ Post %s has been cancelled successfully.", postID), nil
			case "modify":
				if err := d.Scheduler.Modify(ctx, postID); errors.Is(err, service.ErrModifyUnsupported) {
					return modifyUnsupportedText, nil
				} else if err != nil {
					return "", err
				}
				return modifyUnsupportedText, nil
			default:
				return "", &service.InvalidOptionError{Field: "action", Value: action, Valid: manageActions}
			}
		},
	}
}

// renderScheduledPosts 列出全部待发布记录；空库与全部终态是两条不同提示
func renderScheduledPosts(ctx context.Context, d Deps) (string, error) {
	all, err := d.Scheduler.List(ctx)
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "📅 No scheduled posts found. Use the schedule_post tool to create your first scheduled post!", nil
	}

	active := make([]model.ScheduledPost, 0, len(all))
	for _, p := range all {
		if p.Active() {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return "📅 No active scheduled posts. All posts have been published or cancelled.", nil
	}

	now := d.Now()
	var b strings.Builder
	b.WriteString("📅 SCHEDULED POSTS:\n\n")
	for _, p := range active {
		countdown := model.CountdownUntil(p.ScheduleTime.Time, now)
		emoji := "⏰"
		if countdown.Overdue {
			emoji = "⚠️"
		}
		fmt.Fprintf(&b, "%s Post ID: %s\n", emoji, p.ID)
		fmt.Fprintf(&b, "📝 Content: %q\n", truncate(p.Content, 60))
		fmt.Fprintf(&b, "📱 Platforms: %s\n", strings.Join(model.PlatformNames(p.Platforms), ", "))
		fmt.Fprintf(&b, "⏰ Scheduled: %s\n", p.ScheduleTime)
		fmt.Fprintf(&b, "🕐 Time until posting: %s\n", countdown.Short())
		if p.MediaURL != "" {
			fmt.Fprintf(&b, "📎 Media: %s\n", p.MediaURL)
		}
		b.WriteString("\n")
	}
	b.WriteString("💡 Use manage_scheduled_posts with action='cancel' and post_id to cancel a post.")
	return b.String(), nil
}
