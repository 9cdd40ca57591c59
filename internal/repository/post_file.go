package repository

import (
	"context"
	"path/filepath"

	"github.com/d60-Lab/social-suite/internal/model"
)

// PostsFileName 定时记录集合文件名
const PostsFileName = "scheduled_posts.json"

// FilePostRepository 文件型定时记录仓储（单 JSON 文件整读整写）
type FilePostRepository struct {
	file jsonFile[model.ScheduledPost]
}

// NewFilePostRepository 创建文件型定时记录仓储
func NewFilePostRepository(dataDir string) PostRepository {
	return &FilePostRepository{file: jsonFile[model.ScheduledPost]{path: filepath.Join(dataDir, PostsFileName)}}
}

func (r *FilePostRepository) Load(ctx context.Context) ([]model.ScheduledPost, error) {
	return r.file.load()
}

func (r *FilePostRepository) Save(ctx context.Context, posts []model.ScheduledPost) error {
	return r.file.save(posts)
}

func (r *FilePostRepository) FindByStatus(ctx context.Context, status model.PostStatus) ([]model.ScheduledPost, error) {
	all, err := r.file.load()
	if err != nil {
		return nil, err
	}
	out := make([]model.ScheduledPost, 0, len(all))
	for _, p := range all {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}
