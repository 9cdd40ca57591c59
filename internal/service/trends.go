package service

import (
	"context"
	"strings"
)

var (
	trendPlatforms  = []string{"twitter", "instagram", "general"}
	trendCategories = []string{"technology", "business", "entertainment", "sports", "all"}
	trendLocations  = []string{"US", "UK", "IN", "global"}
)

// 各类目的固定趋势话题，类目顺序即 all 的拼接顺序
var (
	trendCategoryOrder = []string{"technology", "business", "entertainment", "sports"}

	trendTopicTable = map[string][]string{
		"technology": {
			"Artificial Intelligence", "Machine Learning", "Blockchain", "Cybersecurity",
			"Cloud Computing", "IoT", "5G Technology", "Quantum Computing",
		},
		"business": {
			"Digital Marketing", "Remote Work", "Startup Funding", "E-commerce",
			"Sustainability", "Leadership", "Innovation", "Entrepreneurship",
		},
		"entertainment": {
			"Streaming Services", "Gaming", "Virtual Reality", "Social Media Trends",
			"Content Creation", "Influencer Marketing", "Digital Art", "NFTs",
		},
		"sports": {
			"Olympics", "World Cup", "NBA Finals", "Super Bowl", "Tennis Championships",
			"Formula 1", "Cricket World Cup", "Sports Analytics",
		},
	}
)

// TrendsReport 趋势话题报告（Platform/Category 已归一为小写，Location 为大写展示形态）
type TrendsReport struct {
	Platform string
	Category string
	Location string
	Topics   []string
}

// TrendsService 趋势话题服务
type TrendsService interface {
	Trending(ctx context.Context, platform, category, location string) (*TrendsReport, error)
}

type trendsService struct{}

func NewTrendsService() TrendsService {
	return &trendsService{}
}

func (s *trendsService) Trending(ctx context.Context, platform, category, location string) (*TrendsReport, error) {
	p := strings.ToLower(platform)
	if !containsString(trendPlatforms, p) {
		return nil, &InvalidOptionError{Field: "platform", Value: platform, Valid: trendPlatforms}
	}
	c := strings.ToLower(category)
	if !containsString(trendCategories, c) {
		return nil, &InvalidOptionError{Field: "category", Value: category, Valid: trendCategories}
	}
	// 地区校验大小写不敏感，展示固定为大写
	loc := strings.ToUpper(location)
	if !containsString([]string{"US", "UK", "IN", "GLOBAL"}, loc) {
		return nil, &InvalidOptionError{Field: "location", Value: location, Valid: trendLocations}
	}

	return &TrendsReport{
		Platform: p,
		Category: c,
		Location: loc,
		Topics:   topicsFor(c),
	}, nil
}

// topicsFor all 取每个类目的前两条（上限 10），否则取单类目前 10 条
func topicsFor(category string) []string {
	if category == "all" {
		out := make([]string, 0, 10)
		for _, c := range trendCategoryOrder {
			out = append(out, trendTopicTable[c][:2]...)
		}
		if len(out) > 10 {
			out = out[:10]
		}
		return out
	}
	topics := trendTopicTable[category]
	if len(topics) > 10 {
		topics = topics[:10]
	}
	return topics
}
