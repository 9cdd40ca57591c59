package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-suite/internal/model"
)

// InitSchema 初始化数据库表结构（database 后端启动时调用）
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.ScheduledPost{}, &model.Competitor{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
