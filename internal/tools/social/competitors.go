package social

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
)

var competitorActions = []string{"add", "remove", "list", "analyze", "compare"}

func newManageCompetitorsTool(d Deps) *tools.Tool {
	return &tools.Tool{
		Name:        "manage_competitors",
		Description: "Add and analyze competitors",
		Category:    tools.CategoryEnhanced,
		Schema: tools.Schema{
			Required: []string{"action"},
			Properties: map[string]tools.Property{
				"action":                 {Type: "string", Description: "Action: add, remove, list, analyze, compare"},
				"competitor_name":        {Type: "string", Description: "Competitor name", Default: ""},
				"platforms":              {Type: "string", Description: "Platforms in format 'twitter:@handle,instagram:@handle'", Default: ""},
				"competitors_to_compare": {Type: "string", Description: "Comma-separated competitor names for comparison", Default: ""},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			action := strings.ToLower(tools.StringArg(args, "action", ""))
			name := tools.StringArg(args, "competitor_name", "")
			platforms := tools.StringArg(args, "platforms", "")
			toCompare := tools.StringArg(args, "competitors_to_compare", "")

			switch action {
			case "add":
				return addCompetitor(ctx, d, name, platforms)
			case "remove":
				if name == "" {
					return "", fmt.Errorf("%w: competitor_name is required for remove action", tools.ErrInvalidArgument)
				}
				if err := d.Competitors.Remove(ctx, name); err != nil {
					return "", err
				}
				return fmt.Sprintf("✅ Competitor '%s' removed successfully", name), nil
			case "list":
				return listCompetitors(ctx, d)
			case "analyze":
				if name == "" {
					return "", fmt.Errorf("%w: competitor_name is required for analyze action", tools.ErrInvalidArgument)
				}
				return analyzeCompetitor(ctx, d, name)
			case "compare":
				return compareCompetitors(ctx, d, toCompare)
			default:
				return "", &service.InvalidOptionError{Field: "action", Value: action, Valid: competitorActions}
			}
		},
	}
}

func addCompetitor(ctx context.Context, d Deps, name, platforms string) (string, error) {
	if name == "" || platforms == "" {
		return "", fmt.Errorf("%w: both competitor_name and platforms are required for add action", tools.ErrInvalidArgument)
	}
	handles := parsePlatformHandles(platforms)
	if len(handles) == 0 {
		return "", fmt.Errorf("%w: invalid platforms format, use 'twitter:@handle,instagram:@handle'", tools.ErrInvalidArgument)
	}
	competitor, err := d.Competitors.Add(ctx, name, handles)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Competitor '%s' added successfully", competitor.Name), nil
}

// parsePlatformHandles 解析 'platform:@handle,...' 串，无冒号的段落忽略
func parsePlatformHandles(spec string) map[string]string {
	handles := make(map[string]string)
	for _, part := range strings.Split(spec, ",") {
		platform, handle, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		platform = strings.TrimSpace(platform)
		handle = strings.TrimSpace(handle)
		if platform == "" {
			continue
		}
		handles[platform] = handle
	}
	return handles
}

func listCompetitors(ctx context.Context, d Deps) (string, error) {
	competitors, err := d.Competitors.List(ctx)
	if err != nil {
		return "", err
	}
	if len(competitors) == 0 {
		return "📋 No competitors are currently being tracked. Use action='add' to start monitoring competitors.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 TRACKED COMPETITORS (%d):\n\n", len(competitors))
	for _, c := range competitors {
		fmt.Fprintf(&b, "🏢 %s\n", c.Name)
		fmt.Fprintf(&b, "   📱 Platforms: %s\n", strings.Join(platformKeys(c.Platforms), ", "))
		fmt.Fprintf(&b, "   📅 Added: %s\n", c.AddedOn.Format("2006-01-02"))
		if c.LastAnalyzed != nil {
			fmt.Fprintf(&b, "   🔍 Last Analyzed: %s\n", c.LastAnalyzed.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func analyzeCompetitor(ctx context.Context, d Deps, name string) (string, error) {
	analysis, err := d.Competitors.Analyze(ctx, name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 COMPETITOR ANALYSIS: %s\n", analysis.Competitor.Name)
	fmt.Fprintf(&b, "📱 Platforms: %s\n\n", strings.Join(platformKeys(analysis.Competitor.Platforms), ", "))

	b.WriteString("📝 CONTENT STRATEGY:\n")
	b.WriteString("   📊 Post Types:\n")
	for _, s := range analysis.Strategy.PostTypes {
		fmt.Fprintf(&b, "      %s: %s%%\n", title(s.Label), num(s.Percent))
	}
	b.WriteString("   🎯 Top Topics:\n")
	for _, s := range analysis.Strategy.TopTopics {
		fmt.Fprintf(&b, "      %s: %s%%\n", title(s.Label), num(s.Percent))
	}
	b.WriteString("\n")

	if analysis.Insights != "" {
		b.WriteString("🤖 AI INSIGHTS:\n")
		b.WriteString(analysis.Insights)
		b.WriteString("\n\n")
	}
	b.WriteString("💡 Use these insights to identify opportunities and differentiate your strategy!")
	return b.String(), nil
}

func compareCompetitors(ctx context.Context, d Deps, toCompare string) (string, error) {
	if toCompare == "" {
		return "", fmt.Errorf("%w: competitors_to_compare is required for compare action", tools.ErrInvalidArgument)
	}
	names := make([]string, 0, 4)
	for _, raw := range strings.Split(toCompare, ",") {
		names = append(names, strings.TrimSpace(raw))
	}

	comparison, err := d.Competitors.Compare(ctx, names)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("🆚 COMPETITOR COMPARISON\n")
	fmt.Fprintf(&b, "📊 Comparing: %s\n\n", strings.Join(comparison.Names, ", "))

	b.WriteString("👥 FOLLOWER COUNT:\n")
	for _, name := range comparison.Names {
		fmt.Fprintf(&b, "   %s: %s\n", name, comma(comparison.Standings[name].Followers))
	}
	b.WriteString("\n💬 ENGAGEMENT RATE:\n")
	for _, name := range comparison.Names {
		fmt.Fprintf(&b, "   %s: %s%%\n", name, num(comparison.Standings[name].EngagementRate))
	}
	b.WriteString("\n📅 POSTING FREQUENCY (per day):\n")
	for _, name := range comparison.Names {
		fmt.Fprintf(&b, "   %s: %d\n", name, comparison.Standings[name].PostingFrequency)
	}
	b.WriteString("\n")
	return b.String(), nil
}

// platformKeys 平台键排序后返回，展示顺序稳定
func platformKeys(platforms map[string]string) []string {
	keys := make([]string, 0, len(platforms))
	for k := range platforms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
