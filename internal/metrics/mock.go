package metrics

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/d60-Lab/social-suite/internal/model"
)

// 各平台账号基准指标（随机扰动前的底数）
var baseAccountMetrics = map[model.Platform]AccountMetrics{
	model.PlatformTwitter:   {Engagement: 150, Reach: 2500, Impressions: 5000, Followers: 1200},
	model.PlatformInstagram: {Engagement: 300, Reach: 4000, Impressions: 8000, Followers: 2500},
	model.PlatformFacebook:  {Engagement: 200, Reach: 3000, Impressions: 6000, Followers: 1800},
	model.PlatformLinkedIn:  {Engagement: 100, Reach: 1500, Impressions: 3000, Followers: 800},
}

// 各平台互动计数底数，标签随平台而异
var baseEngagementCounters = map[model.Platform][]MetricValue{
	model.PlatformInstagram: {
		{Label: "likes", Value: 150},
		{Label: "comments", Value: 25},
		{Label: "shares", Value: 8},
		{Label: "saves", Value: 12},
	},
	model.PlatformTwitter: {
		{Label: "likes", Value: 45},
		{Label: "retweets", Value: 12},
		{Label: "replies", Value: 8},
		{Label: "quotes", Value: 3},
	},
	model.PlatformFacebook: {
		{Label: "likes", Value: 80},
		{Label: "comments", Value: 15},
		{Label: "shares", Value: 6},
		{Label: "reactions", Value: 20},
	},
	model.PlatformLinkedIn: {
		{Label: "likes", Value: 35},
		{Label: "comments", Value: 12},
		{Label: "shares", Value: 5},
		{Label: "reactions", Value: 8},
	},
}

var (
	topPostContentTypes = []string{"image", "video", "carousel", "text"}
	strategyPostTypes   = []string{"images", "videos", "text", "links"}
	strategyTopics      = []string{"products", "lifestyle", "community", "promotions"}
	weekDays            = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	peakHourSlots       = []string{"9:00 AM", "12:00 PM", "3:00 PM", "6:00 PM", "9:00 PM"}
)

// MockProvider 种子化伪随机指标源，演示部署代替真实平台 API
type MockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockProvider 创建指标源，相同 seed 产生相同序列
func NewMockProvider(seed int64) *MockProvider {
	return &MockProvider{rng: rand.New(rand.NewSource(seed))}
}

// randInt 闭区间 [lo, hi] 随机整数
func (m *MockProvider) randInt(lo, hi int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lo + m.rng.Intn(hi-lo+1)
}

func (m *MockProvider) uniform(lo, hi float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lo + m.rng.Float64()*(hi-lo)
}

func (m *MockProvider) choice(options []string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return options[m.rng.Intn(len(options))]
}

// sample 无放回抽样 k 个
func (m *MockProvider) sample(options []string, k int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if k > len(options) {
		k = len(options)
	}
	out := make([]string, 0, k)
	for _, idx := range m.rng.Perm(len(options))[:k] {
		out = append(out, options[idx])
	}
	return out
}

func (m *MockProvider) AccountMetrics(ctx context.Context, platform model.Platform, timeframe string) (AccountMetrics, error) {
	base, ok := baseAccountMetrics[platform]
	if !ok {
		base = baseAccountMetrics[model.PlatformTwitter]
	}
	// 每项指标独立抽 ±20% 扰动
	out := AccountMetrics{
		Engagement:  int(float64(base.Engagement) * m.uniform(0.8, 1.2)),
		Reach:       int(float64(base.Reach) * m.uniform(0.8, 1.2)),
		Impressions: int(float64(base.Impressions) * m.uniform(0.8, 1.2)),
		Followers:   int(float64(base.Followers) * m.uniform(0.8, 1.2)),
	}
	// 粉丝数是存量，不随时间范围放大
	switch timeframe {
	case "30d":
		out.Engagement *= 4
		out.Reach *= 4
		out.Impressions *= 4
	case "90d":
		out.Engagement *= 12
		out.Reach *= 12
		out.Impressions *= 12
	}
	return out, nil
}

func (m *MockProvider) Demographics(ctx context.Context, platform model.Platform) (Demographics, error) {
	ages := []Share{
		{Label: "18-24", Percent: float64(m.randInt(15, 35))},
		{Label: "25-34", Percent: float64(m.randInt(25, 45))},
		{Label: "35-44", Percent: float64(m.randInt(15, 30))},
		{Label: "45-54", Percent: float64(m.randInt(5, 20))},
		{Label: "55+", Percent: float64(m.randInt(2, 15))},
	}
	var total float64
	for _, a := range ages {
		total += a.Percent
	}
	for i := range ages {
		ages[i].Percent = round1(ages[i].Percent * 100 / total)
	}

	female := m.randInt(45, 65)
	other := m.randInt(1, 5)
	gender := []Share{
		{Label: "Female", Percent: float64(female)},
		{Label: "Male", Percent: float64(100 - female - other)},
		{Label: "Other", Percent: float64(other)},
	}

	locations := []Share{
		{Label: "United States", Percent: float64(m.randInt(25, 40))},
		{Label: "India", Percent: float64(m.randInt(15, 30))},
		{Label: "United Kingdom", Percent: float64(m.randInt(8, 15))},
		{Label: "Canada", Percent: float64(m.randInt(5, 12))},
		{Label: "Australia", Percent: float64(m.randInt(3, 8))},
	}
	var sum float64
	for _, l := range locations {
		sum += l.Percent
	}
	locations = append(locations, Share{Label: "Others", Percent: 100 - sum})

	return Demographics{
		AgeGroups:      ages,
		Gender:         gender,
		Locations:      locations,
		TotalFollowers: m.randInt(800, 5000),
	}, nil
}

func (m *MockProvider) FollowerGrowth(ctx context.Context, platform model.Platform, days int) (GrowthStats, error) {
	if days <= 0 {
		days = 30
	}
	followers := m.randInt(800, 3000)
	rate := m.uniform(1.5, 8.0)
	total := int(float64(followers) * rate / 100)
	return GrowthStats{
		FollowerCount: followers,
		PeriodDays:    days,
		Total:         total,
		Percentage:    round1(rate),
		AverageDaily:  round1(float64(total) / float64(days)),
	}, nil
}

func (m *MockProvider) EngagementStats(ctx context.Context, platform model.Platform, days int) (EngagementStats, error) {
	if days <= 0 {
		days = 7
	}
	base, ok := baseEngagementCounters[platform]
	if !ok {
		base = baseEngagementCounters[model.PlatformInstagram]
	}

	counters := make([]MetricValue, len(base))
	total := 0
	for i, c := range base {
		v := int(float64(c.Value) * m.uniform(0.7, 1.4))
		counters[i] = MetricValue{Label: c.Label, Value: v}
		total += v
	}

	reach := m.randInt(1000, 5000)
	return EngagementStats{
		TotalPosts:     m.randInt(10, 50),
		PeriodDays:     days,
		Metrics:        counters,
		EngagementRate: round2(float64(total) / float64(reach) * 100),
		AverageReach:   reach,
		TopPosts:       m.topPosts(),
	}, nil
}

func (m *MockProvider) topPosts() []TopPost {
	posts := make([]TopPost, 5)
	for i := range posts {
		posts[i] = TopPost{
			PostID:         fmt.Sprintf("post_%d", i+1),
			ContentType:    m.choice(topPostContentTypes),
			EngagementRate: round2(m.uniform(2.5, 8.0)),
			Reach:          m.randInt(500, 3000),
			Impressions:    m.randInt(800, 5000),
		}
	}
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].EngagementRate > posts[j].EngagementRate })
	return posts
}

func (m *MockProvider) CompetitorMetrics(ctx context.Context, platforms []string) (map[string]model.CompetitorMetrics, error) {
	out := make(map[string]model.CompetitorMetrics, len(platforms))
	for _, p := range platforms {
		out[p] = model.CompetitorMetrics{
			Followers:      m.randInt(500, 10000),
			EngagementRate: round2(m.uniform(1.0, 6.0)),
			PostsPerWeek:   m.randInt(3, 15),
			AvgLikes:       m.randInt(50, 500),
			AvgComments:    m.randInt(5, 50),
		}
	}
	return out, nil
}

func (m *MockProvider) CompetitorStrategy(ctx context.Context, name string) (CompetitorStrategy, error) {
	return CompetitorStrategy{
		PostTypes:   m.normalizedShares(strategyPostTypes),
		TopTopics:   m.normalizedShares(strategyTopics),
		PostingDays: m.sample(weekDays, 3),
		PeakHours:   m.sample(peakHourSlots, 2),
	}, nil
}

func (m *MockProvider) CompetitorStanding(ctx context.Context, name string) (CompetitorStanding, error) {
	return CompetitorStanding{
		Followers:        m.randInt(1000, 15000),
		EngagementRate:   round2(m.uniform(1.5, 5.5)),
		PostingFrequency: m.randInt(3, 12),
	}, nil
}

// normalizedShares 随机权重归一化到合计 100%（末项吸收舍入误差）
func (m *MockProvider) normalizedShares(labels []string) []Share {
	weights := make([]int, len(labels))
	total := 0
	for i := range labels {
		weights[i] = m.randInt(10, 40)
		total += weights[i]
	}
	out := make([]Share, len(labels))
	var acc float64
	for i, label := range labels {
		pct := round1(float64(weights[i]) * 100 / float64(total))
		if i == len(labels)-1 {
			pct = round1(100 - acc)
		}
		out[i] = Share{Label: label, Percent: pct}
		acc += pct
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
