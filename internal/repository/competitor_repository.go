package repository

import (
	"context"

	"github.com/d60-Lab/social-suite/internal/model"
)

// CompetitorRepository 竞品档案仓储接口
type CompetitorRepository interface {
	// Load 读取全部档案（按加入顺序）
	Load(ctx context.Context) ([]model.Competitor, error)

	// Save 整集合覆盖持久化
	Save(ctx context.Context, competitors []model.Competitor) error

	// FindByName 按名称查找（大小写不敏感），未命中返回 (nil, nil)
	FindByName(ctx context.Context, name string) (*model.Competitor, error)
}
