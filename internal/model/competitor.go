package model

import "time"

// CompetitorMetrics 单平台竞品指标快照
type CompetitorMetrics struct {
	Followers      int     `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"`
	PostsPerWeek   int     `json:"posts_per_week"`
	AvgLikes       int     `json:"avg_likes"`
	AvgComments    int     `json:"avg_comments"`
}

// Competitor 竞品账号档案（platform -> handle）
type Competitor struct {
	Name         string                       `json:"name" gorm:"primaryKey;type:varchar(64)"`
	Platforms    map[string]string            `json:"platforms" gorm:"serializer:json;type:text"`
	AddedOn      time.Time                    `json:"added_on" gorm:"not null"`
	LastAnalyzed *time.Time                   `json:"last_analyzed,omitempty"`
	Metrics      map[string]CompetitorMetrics `json:"metrics" gorm:"serializer:json;type:text"`
}

func (Competitor) TableName() string { return "competitors" }
