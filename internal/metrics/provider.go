package metrics

import (
	"context"

	"github.com/d60-Lab/social-suite/internal/model"
)

// AccountMetrics 账号级核心指标
type AccountMetrics struct {
	Engagement  int
	Reach       int
	Impressions int
	Followers   int
}

// Share 带标签的百分比项（按展示顺序排列）
type Share struct {
	Label   string
	Percent float64
}

// Demographics 受众画像
type Demographics struct {
	AgeGroups      []Share
	Gender         []Share
	Locations      []Share
	TotalFollowers int
}

// GrowthStats 粉丝增长统计
type GrowthStats struct {
	FollowerCount int
	PeriodDays    int
	Total         int
	Percentage    float64
	AverageDaily  float64
}

// MetricValue 平台特有的互动计数（likes / retweets / saves ...）
type MetricValue struct {
	Label string
	Value int
}

// TopPost 高表现帖子快照
type TopPost struct {
	PostID         string
	ContentType    string
	EngagementRate float64
	Reach          int
	Impressions    int
}

// EngagementStats 互动统计（含按互动率降序的 top 帖子）
type EngagementStats struct {
	TotalPosts     int
	PeriodDays     int
	Metrics        []MetricValue
	EngagementRate float64
	AverageReach   int
	TopPosts       []TopPost
}

// Metric 按标签取互动计数，缺失返回 0
func (s EngagementStats) Metric(label string) int {
	for _, m := range s.Metrics {
		if m.Label == label {
			return m.Value
		}
	}
	return 0
}

// CompetitorStrategy 竞品内容策略画像
type CompetitorStrategy struct {
	PostTypes   []Share
	TopTopics   []Share
	PostingDays []string
	PeakHours   []string
}

// CompetitorStanding 竞品对比单项
type CompetitorStanding struct {
	Followers        int
	EngagementRate   float64
	PostingFrequency int
}

// Provider 平台指标源。真实实现对接各平台 API；
// 演示部署使用 MockProvider（种子化伪随机）。
type Provider interface {
	// AccountMetrics 账号指标，timeframe ∈ {7d, 30d, 90d}
	AccountMetrics(ctx context.Context, platform model.Platform, timeframe string) (AccountMetrics, error)

	// Demographics 受众画像（各分布合计 100%）
	Demographics(ctx context.Context, platform model.Platform) (Demographics, error)

	// FollowerGrowth 指定天数内的粉丝增长
	FollowerGrowth(ctx context.Context, platform model.Platform, days int) (GrowthStats, error)

	// EngagementStats 近期互动统计
	EngagementStats(ctx context.Context, platform model.Platform, days int) (EngagementStats, error)

	// CompetitorMetrics 按平台生成竞品指标
	CompetitorMetrics(ctx context.Context, platforms []string) (map[string]model.CompetitorMetrics, error)

	// CompetitorStrategy 竞品内容策略画像
	CompetitorStrategy(ctx context.Context, name string) (CompetitorStrategy, error)

	// CompetitorStanding 竞品横向对比单项
	CompetitorStanding(ctx context.Context, name string) (CompetitorStanding, error)
}
