package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/d60-Lab/social-suite/internal/metrics"
	"github.com/d60-Lab/social-suite/internal/model"
	"github.com/d60-Lab/social-suite/internal/repository"
)

// CompetitorAnalysis 单竞品分析结果
type CompetitorAnalysis struct {
	Competitor model.Competitor
	Strategy   metrics.CompetitorStrategy
	Insights   string
}

// CompetitorComparison 多竞品对比，Names 保持入参顺序
type CompetitorComparison struct {
	Names     []string
	Standings map[string]metrics.CompetitorStanding
}

// CompetitorService 竞品追踪服务
// 名称匹配大小写不敏感，展示时保留录入原文
type CompetitorService interface {
	// Add 新增追踪档案，重名返回 AlreadyTrackedError
	Add(ctx context.Context, name string, platforms map[string]string) (*model.Competitor, error)

	// Remove 移除档案，未追踪返回 NotTrackedError
	Remove(ctx context.Context, name string) error

	// List 返回全部档案，按加入顺序
	List(ctx context.Context) ([]model.Competitor, error)

	// Analyze 生成策略分析并回写指标快照与分析时间
	Analyze(ctx context.Context, name string) (*CompetitorAnalysis, error)

	// Compare 横向对比，要求至少 2 个已追踪的名称
	Compare(ctx context.Context, names []string) (*CompetitorComparison, error)
}

type competitorService struct {
	repo     repository.CompetitorRepository
	provider metrics.Provider
	mu       sync.RWMutex
	now      func() time.Time
}

func NewCompetitorService(repo repository.CompetitorRepository, provider metrics.Provider) CompetitorService {
	return &competitorService{repo: repo, provider: provider, now: time.Now}
}

func (s *competitorService) Add(ctx context.Context, name string, platforms map[string]string) (*model.Competitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	competitors, err := s.repo.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load competitors", Err: err}
	}
	for _, c := range competitors {
		if strings.EqualFold(c.Name, name) {
			return nil, &AlreadyTrackedError{Name: c.Name}
		}
	}
	competitor := model.Competitor{
		Name:      name,
		Platforms: platforms,
		AddedOn:   s.now(),
	}
	competitors = append(competitors, competitor)
	if err := s.repo.Save(ctx, competitors); err != nil {
		return nil, &PersistenceError{Op: "save competitors", Err: err}
	}
	return &competitor, nil
}

func (s *competitorService) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	competitors, err := s.repo.Load(ctx)
	if err != nil {
		return &PersistenceError{Op: "load competitors", Err: err}
	}
	kept := competitors[:0]
	for _, c := range competitors {
		if !strings.EqualFold(c.Name, name) {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(competitors) {
		return &NotTrackedError{Name: name}
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return &PersistenceError{Op: "save competitors", Err: err}
	}
	return nil
}

func (s *competitorService) List(ctx context.Context) ([]model.Competitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	competitors, err := s.repo.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load competitors", Err: err}
	}
	return competitors, nil
}

func (s *competitorService) Analyze(ctx context.Context, name string) (*CompetitorAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	competitors, err := s.repo.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load competitors", Err: err}
	}
	idx := -1
	for i := range competitors {
		if strings.EqualFold(competitors[i].Name, name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &NotTrackedError{Name: name}
	}

	// map 遍历无序，固定平台顺序让指标生成可复现
	platforms := make([]string, 0, len(competitors[idx].Platforms))
	for p := range competitors[idx].Platforms {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	perPlatform, err := s.provider.CompetitorMetrics(ctx, platforms)
	if err != nil {
		return nil, err
	}
	strategy, err := s.provider.CompetitorStrategy(ctx, competitors[idx].Name)
	if err != nil {
		return nil, err
	}

	analyzedAt := s.now()
	competitors[idx].Metrics = perPlatform
	competitors[idx].LastAnalyzed = &analyzedAt
	if err := s.repo.Save(ctx, competitors); err != nil {
		return nil, &PersistenceError{Op: "save competitors", Err: err}
	}

	return &CompetitorAnalysis{
		Competitor: competitors[idx],
		Strategy:   strategy,
		Insights:   buildCompetitorInsights(strategy, perPlatform),
	}, nil
}

func (s *competitorService) Compare(ctx context.Context, names []string) (*CompetitorComparison, error) {
	if len(names) < 2 {
		return nil, ErrNotEnoughCompetitors
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	competitors, err := s.repo.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load competitors", Err: err}
	}

	ordered := make([]string, 0, len(names))
	standings := make(map[string]metrics.CompetitorStanding, len(names))
	for _, raw := range names {
		var tracked *model.Competitor
		for i := range competitors {
			if strings.EqualFold(competitors[i].Name, raw) {
				tracked = &competitors[i]
				break
			}
		}
		if tracked == nil {
			return nil, &NotTrackedError{Name: raw}
		}
		standing, err := s.provider.CompetitorStanding(ctx, tracked.Name)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, tracked.Name)
		standings[tracked.Name] = standing
	}
	return &CompetitorComparison{Names: ordered, Standings: standings}, nil
}

// buildCompetitorInsights 把策略画像与各平台指标压缩成一段建议文本
func buildCompetitorInsights(strategy metrics.CompetitorStrategy, perPlatform map[string]model.CompetitorMetrics) string {
	parts := make([]string, 0, 3)
	if top, ok := dominantShare(strategy.PostTypes); ok {
		parts = append(parts, fmt.Sprintf("Their content mix leans toward %s (%s%%)", top.Label, num(top.Percent)))
	}
	if len(strategy.PostingDays) > 0 && len(strategy.PeakHours) > 0 {
		parts = append(parts, fmt.Sprintf("They post most often on %s around %s",
			strings.Join(strategy.PostingDays, ", "), strings.Join(strategy.PeakHours, " and ")))
	}
	if len(perPlatform) > 0 {
		var sum float64
		for _, m := range perPlatform {
			sum += m.EngagementRate
		}
		switch avg := sum / float64(len(perPlatform)); {
		case avg > 4:
			parts = append(parts, "Engagement is strong, so study which formats drive their results")
		case avg > 2:
			parts = append(parts, "Engagement is steady and their posting cadence is worth benchmarking")
		default:
			parts = append(parts, "Engagement is modest, leaving room to win with more interactive content")
		}
	}
	if len(parts) == 0 {
		return "Not enough data to profile this competitor yet."
	}
	return strings.Join(parts, " • ")
}
