package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-suite/internal/model"
)

// DBCompetitorRepository 数据库型竞品档案仓储实现
type DBCompetitorRepository struct {
	db *gorm.DB
}

// NewDBCompetitorRepository 创建数据库型竞品档案仓储
func NewDBCompetitorRepository(db *gorm.DB) CompetitorRepository {
	return &DBCompetitorRepository{db: db}
}

func (r *DBCompetitorRepository) Load(ctx context.Context) ([]model.Competitor, error) {
	var competitors []model.Competitor
	err := r.db.WithContext(ctx).Order("added_on").Find(&competitors).Error
	if err != nil {
		return nil, err
	}
	return competitors, nil
}

func (r *DBCompetitorRepository) Save(ctx context.Context, competitors []model.Competitor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Competitor{}).Error; err != nil {
			return err
		}
		if len(competitors) == 0 {
			return nil
		}
		return tx.Create(&competitors).Error
	})
}

func (r *DBCompetitorRepository) FindByName(ctx context.Context, name string) (*model.Competitor, error) {
	var competitor model.Competitor
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&competitor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &competitor, nil
}
