package repository

import (
	"context"

	"github.com/d60-Lab/social-suite/internal/model"
)

// PostRepository 定时发布记录仓储接口
// 集合级读写：Save 始终以整集合覆盖持久化（不做行级局部更新）
type PostRepository interface {
	// Load 读取全部记录（按创建顺序）
	Load(ctx context.Context) ([]model.ScheduledPost, error)

	// Save 整集合覆盖持久化
	Save(ctx context.Context, posts []model.ScheduledPost) error

	// FindByStatus 按状态过滤（按创建顺序）
	FindByStatus(ctx context.Context, status model.PostStatus) ([]model.ScheduledPost, error)
}
