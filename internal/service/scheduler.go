package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/social-suite/internal/model"
	"github.com/d60-Lab/social-suite/internal/repository"
)

// SchedulerService 定时发布服务
// 所有写操作在同一把写锁内走 load-modify-save，保证整集合覆盖不丢并发写
type SchedulerService interface {
	// Schedule 创建定时任务，返回记录与距发布的倒计时
	Schedule(ctx context.Context, content, platforms, scheduleTime, mediaURL string) (*model.ScheduledPost, model.Countdown, error)

	// List 返回全部记录（含已取消/已发布），按创建顺序
	List(ctx context.Context) ([]model.ScheduledPost, error)

	// ListActive 仅返回待发布记录
	ListActive(ctx context.Context) ([]model.ScheduledPost, error)

	// Cancel 取消指定的待发布记录；已取消/已发布/不存在均返回 ErrPostNotFound
	Cancel(ctx context.Context, id string) (*model.ScheduledPost, error)

	// PublishDue 把计划时间已到的待发布记录置为已发布，返回本次流转的记录。
	// 只改本地状态，不触达任何平台
	PublishDue(ctx context.Context) ([]model.ScheduledPost, error)

	// Modify 预留操作，当前始终返回 ErrModifyUnsupported 且不改动任何记录
	Modify(ctx context.Context, id string) error
}

type schedulerService struct {
	repo repository.PostRepository
	mu   sync.RWMutex
	now  func() time.Time
}

func NewSchedulerService(repo repository.PostRepository) SchedulerService {
	return &schedulerService{repo: repo, now: time.Now}
}

func (s *schedulerService) Schedule(ctx context.Context, content, platforms, scheduleTime, mediaURL string) (*model.ScheduledPost, model.Countdown, error) {
	when, err := model.ParseScheduleTime(scheduleTime)
	if err != nil {
		return nil, model.Countdown{}, ErrInvalidTimeFormat
	}
	now := s.now()
	// 等于当前时刻也算过期
	if !when.Time.After(now) {
		return nil, model.Countdown{}, ErrPastSchedule
	}
	valid, invalid := model.ParsePlatforms(platforms)
	if len(invalid) > 0 {
		return nil, model.Countdown{}, &InvalidPlatformError{Platforms: invalid}
	}

	post := model.ScheduledPost{
		ID:           uuid.New().String()[:8],
		Content:      content,
		Platforms:    valid,
		ScheduleTime: when,
		MediaURL:     mediaURL,
		Status:       model.PostStatusScheduled,
		CreatedAt:    now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, model.Countdown{}, &PersistenceError{Op: "load scheduled posts", Err: err}
	}
	posts = append(posts, post)
	if err := s.repo.Save(ctx, posts); err != nil {
		return nil, model.Countdown{}, &PersistenceError{Op: "save scheduled posts", Err: err}
	}
	return &post, model.CountdownUntil(when.Time, now), nil
}

func (s *schedulerService) List(ctx context.Context) ([]model.ScheduledPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load scheduled posts", Err: err}
	}
	return posts, nil
}

func (s *schedulerService) ListActive(ctx context.Context) ([]model.ScheduledPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts, err := s.repo.FindByStatus(ctx, model.PostStatusScheduled)
	if err != nil {
		return nil, &PersistenceError{Op: "load scheduled posts", Err: err}
	}
	return posts, nil
}

func (s *schedulerService) Cancel(ctx context.Context, id string) (*model.ScheduledPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load scheduled posts", Err: err}
	}
	for i := range posts {
		if posts[i].ID != id || posts[i].Status != model.PostStatusScheduled {
			continue
		}
		now := s.now()
		posts[i].Status = model.PostStatusCancelled
		posts[i].CancelledAt = &now
		if err := s.repo.Save(ctx, posts); err != nil {
			return nil, &PersistenceError{Op: "save scheduled posts", Err: err}
		}
		cancelled := posts[i]
		return &cancelled, nil
	}
	return nil, ErrPostNotFound
}

func (s *schedulerService) PublishDue(ctx context.Context) ([]model.ScheduledPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load scheduled posts", Err: err}
	}
	now := s.now()
	var published []model.ScheduledPost
	for i := range posts {
		if posts[i].Status != model.PostStatusScheduled || posts[i].ScheduleTime.After(now) {
			continue
		}
		postedAt := now
		posts[i].Status = model.PostStatusPosted
		posts[i].PostedAt = &postedAt
		published = append(published, posts[i])
	}
	if len(published) == 0 {
		return nil, nil
	}
	if err := s.repo.Save(ctx, posts); err != nil {
		return nil, &PersistenceError{Op: "save scheduled posts", Err: err}
	}
	return published, nil
}

func (s *schedulerService) Modify(ctx context.Context, id string) error {
	return ErrModifyUnsupported
}
