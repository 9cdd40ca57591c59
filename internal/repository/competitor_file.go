package repository

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/d60-Lab/social-suite/internal/model"
)

// CompetitorsFileName 竞品档案集合文件名
const CompetitorsFileName = "competitors.json"

// FileCompetitorRepository 文件型竞品档案仓储
type FileCompetitorRepository struct {
	file jsonFile[model.Competitor]
}

// NewFileCompetitorRepository 创建文件型竞品档案仓储
func NewFileCompetitorRepository(dataDir string) CompetitorRepository {
	return &FileCompetitorRepository{file: jsonFile[model.Competitor]{path: filepath.Join(dataDir, CompetitorsFileName)}}
}

func (r *FileCompetitorRepository) Load(ctx context.Context) ([]model.Competitor, error) {
	return r.file.load()
}

func (r *FileCompetitorRepository) Save(ctx context.Context, competitors []model.Competitor) error {
	return r.file.save(competitors)
}

func (r *FileCompetitorRepository) FindByName(ctx context.Context, name string) (*model.Competitor, error) {
	all, err := r.file.load()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Name, name) {
			return &all[i], nil
		}
	}
	return nil, nil
}
