// Package social 装配社媒管理工具集：每个工具校验入参、调用对应服务、
// 渲染面向用户的文本报告。工具名与参数名保持对外协议不变。
package social

import (
	"strconv"
	"strings"
	"time"

	"github.com/d60-Lab/social-suite/internal/cache"
	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
)

// Deps 工具集依赖。Cache 可为 nil，此时分析/趋势报告不走缓存。
type Deps struct {
	Scheduler   service.SchedulerService
	Hashtags    service.HashtagService
	Analytics   service.AnalyticsService
	Trends      service.TrendsService
	Audience    service.AudienceService
	Competitors service.CompetitorService
	Content     service.ContentService
	Cache       cache.ReportCache

	// Now 列表倒计时的时钟，nil 时用 time.Now
	Now func() time.Time
}

// RegisterAll 注册全部工具到注册表
func RegisterAll(reg *tools.Registry, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}

	// core
	reg.MustRegister(newSchedulePostTool(d))
	reg.MustRegister(newGenerateHashtagsTool(d))
	reg.MustRegister(newGetAnalyticsTool(d))
	reg.MustRegister(newGetTrendingTopicsTool(d))
	reg.MustRegister(newManageScheduledPostsTool(d))

	// enhanced
	reg.MustRegister(newContentSuggestionTool(d))
	reg.MustRegister(newContentCalendarTool(d))
	reg.MustRegister(newAudienceInsightsTool(d))
	reg.MustRegister(newManageCompetitorsTool(d))
	reg.MustRegister(newAdvancedHashtagsTool(d))
}

// title 首字母大写展示形态
func title(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// truncate 超长内容按字符截断并补省略号
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// comma 千分位分隔
func comma(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// num 百分比等数值的最短十进制形式，整数值补一位小数
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
