package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-suite/internal/model"
)

// DBPostRepository 数据库型定时记录仓储实现
type DBPostRepository struct {
	db *gorm.DB
}

// NewDBPostRepository 创建数据库型定时记录仓储
func NewDBPostRepository(db *gorm.DB) PostRepository {
	return &DBPostRepository{db: db}
}

func (r *DBPostRepository) Load(ctx context.Context) ([]model.ScheduledPost, error) {
	var posts []model.ScheduledPost
	err := r.db.WithContext(ctx).Order("created_at").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Save 单事务内整集合替换，与文件后端的整文件覆盖语义对齐
func (r *DBPostRepository) Save(ctx context.Context, posts []model.ScheduledPost) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.ScheduledPost{}).Error; err != nil {
			return err
		}
		if len(posts) == 0 {
			return nil
		}
		return tx.Create(&posts).Error
	})
}

func (r *DBPostRepository) FindByStatus(ctx context.Context, status model.PostStatus) ([]model.ScheduledPost, error) {
	var posts []model.ScheduledPost
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
