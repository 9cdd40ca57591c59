package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/d60-Lab/social-suite/internal/metrics"
	"github.com/d60-Lab/social-suite/internal/model"
)

var audiencePlatforms = []string{"twitter", "facebook", "instagram", "linkedin"}

// 增长/互动指标的默认统计窗口（天）
const (
	growthWindowDays     = 30
	engagementWindowDays = 7
)

// AudienceReport 综合受众报告：画像、增长、互动与文字洞察
type AudienceReport struct {
	Demographics metrics.Demographics
	Growth       metrics.GrowthStats
	Engagement   metrics.EngagementStats
	Insights     string
}

// AudienceService 受众分析服务
type AudienceService interface {
	Demographics(ctx context.Context, platform string) (*metrics.Demographics, error)
	Growth(ctx context.Context, platform string) (*metrics.GrowthStats, error)
	Engagement(ctx context.Context, platform string) (*metrics.EngagementStats, error)
	Report(ctx context.Context, platform string) (*AudienceReport, error)
}

type audienceService struct {
	provider metrics.Provider
}

func NewAudienceService(provider metrics.Provider) AudienceService {
	return &audienceService{provider: provider}
}

func (s *audienceService) platform(raw string) (model.Platform, error) {
	p := strings.ToLower(raw)
	if !containsString(audiencePlatforms, p) {
		return "", &InvalidOptionError{Field: "platform", Value: raw, Valid: audiencePlatforms}
	}
	return model.Platform(p), nil
}

func (s *audienceService) Demographics(ctx context.Context, platform string) (*metrics.Demographics, error) {
	p, err := s.platform(platform)
	if err != nil {
		return nil, err
	}
	d, err := s.provider.Demographics(ctx, p)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *audienceService) Growth(ctx context.Context, platform string) (*metrics.GrowthStats, error) {
	p, err := s.platform(platform)
	if err != nil {
		return nil, err
	}
	g, err := s.provider.FollowerGrowth(ctx, p, growthWindowDays)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *audienceService) Engagement(ctx context.Context, platform string) (*metrics.EngagementStats, error) {
	p, err := s.platform(platform)
	if err != nil {
		return nil, err
	}
	e, err := s.provider.EngagementStats(ctx, p, engagementWindowDays)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *audienceService) Report(ctx context.Context, platform string) (*AudienceReport, error) {
	p, err := s.platform(platform)
	if err != nil {
		return nil, err
	}
	d, err := s.provider.Demographics(ctx, p)
	if err != nil {
		return nil, err
	}
	g, err := s.provider.FollowerGrowth(ctx, p, growthWindowDays)
	if err != nil {
		return nil, err
	}
	e, err := s.provider.EngagementStats(ctx, p, engagementWindowDays)
	if err != nil {
		return nil, err
	}
	return &AudienceReport{
		Demographics: d,
		Growth:       g,
		Engagement:   e,
		Insights:     buildAudienceInsights(d, g, e),
	}, nil
}

func buildAudienceInsights(d metrics.Demographics, g metrics.GrowthStats, e metrics.EngagementStats) string {
	parts := make([]string, 0, 3)

	if dominant, ok := dominantShare(d.AgeGroups); ok {
		parts = append(parts, fmt.Sprintf("Your primary audience is %s age group (%s%%)", dominant.Label, num(dominant.Percent)))
	}

	switch {
	case g.Percentage > 5:
		parts = append(parts, "Excellent follower growth rate indicates strong content resonance")
	case g.Percentage > 2:
		parts = append(parts, "Steady growth - consider increasing posting frequency")
	default:
		parts = append(parts, "Growth could be improved with more engaging content")
	}

	switch {
	case e.EngagementRate > 4:
		parts = append(parts, "High engagement rate shows strong audience connection")
	case e.EngagementRate > 2:
		parts = append(parts, "Good engagement - focus on replicating top-performing content")
	default:
		parts = append(parts, "Consider optimizing posting times and content strategy")
	}

	if len(parts) == 0 {
		return "Audience data suggests steady performance with room for optimization."
	}
	return strings.Join(parts, " • ")
}

// dominantShare 占比最高的分组，并列取先出现者
func dominantShare(shares []metrics.Share) (metrics.Share, bool) {
	if len(shares) == 0 {
		return metrics.Share{}, false
	}
	best := shares[0]
	for _, s := range shares[1:] {
		if s.Percent > best.Percent {
			best = s
		}
	}
	return best, true
}

// num 最短十进制形式，整数值补一位小数（与报告中的百分比展示一致）
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
