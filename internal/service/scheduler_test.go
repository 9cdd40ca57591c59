package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/social-suite/internal/model"
	"github.com/d60-Lab/social-suite/internal/repository"
)

func newTestScheduler(t *testing.T) (*schedulerService, time.Time) {
	t.Helper()
	repo := repository.NewFilePostRepository(t.TempDir())
	svc := NewSchedulerService(repo).(*schedulerService)
	base := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	return svc, base
}

func TestScheduleCreatesPost(t *testing.T) {
	ctx := context.Background()
	svc, base := newTestScheduler(t)

	post, countdown, err := svc.Schedule(ctx, "Launch day!", "twitter, instagram", "2025-12-02 12:05", "https://cdn.example.com/banner.png")
	require.NoError(t, err)

	assert.Len(t, post.ID, 8)
	assert.Equal(t, "Launch day!", post.Content)
	assert.Equal(t, []model.Platform{model.PlatformTwitter, model.PlatformInstagram}, post.Platforms)
	assert.Equal(t, "2025-12-02 12:05", post.ScheduleTime.String())
	assert.Equal(t, "https://cdn.example.com/banner.png", post.MediaURL)
	assert.Equal(t, model.PostStatusScheduled, post.Status)
	assert.True(t, post.CreatedAt.Equal(base))
	assert.Nil(t, post.CancelledAt)
	assert.Nil(t, post.PostedAt)

	assert.Equal(t, model.Countdown{Days: 1, Hours: 2, Minutes: 5}, countdown)

	stored, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, post.ID, stored[0].ID)
}

func TestScheduleRejectsBadTimeFormat(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)

	for _, input := range []string{"2025/12/25 14:30", "25-12-2025 14:30", "2025-12-25", "tomorrow"} {
		_, _, err := svc.Schedule(ctx, "post", "twitter", input, "")
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", input)
	}
}

func TestScheduleRejectsPastTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)

	_, _, err := svc.Schedule(ctx, "post", "twitter", "2025-11-30 09:00", "")
	assert.ErrorIs(t, err, ErrPastSchedule)

	// 恰好等于当前时刻同样拒绝
	_, _, err = svc.Schedule(ctx, "post", "twitter", "2025-12-01 10:00", "")
	assert.ErrorIs(t, err, ErrPastSchedule)
}

func TestScheduleRejectsUnknownPlatforms(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)

	_, _, err := svc.Schedule(ctx, "post", "twitter,myspace,,orkut", "2025-12-02 12:00", "")

	var invalidErr *InvalidPlatformError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, []string{"myspace", "", "orkut"}, invalidErr.Platforms)

	stored, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestScheduleDedupsPlatforms(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)

	post, _, err := svc.Schedule(ctx, "post", "twitter, TWITTER ,facebook,twitter", "2025-12-02 12:00", "")
	require.NoError(t, err)
	assert.Equal(t, []model.Platform{model.PlatformTwitter, model.PlatformFacebook}, post.Platforms)
}

func TestCancelScheduledPost(t *testing.T) {
	ctx := context.Background()
	svc, base := newTestScheduler(t)

	first, _, err := svc.Schedule(ctx, "first", "twitter", "2025-12-02 12:00", "")
	require.NoError(t, err)
	_, _, err = svc.Schedule(ctx, "second", "facebook", "2025-12-03 12:00", "")
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PostStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
	assert.True(t, cancelled.CancelledAt.Equal(base))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Content)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCancelUnknownPost(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)

	post, _, err := svc.Schedule(ctx, "keep me", "twitter", "2025-12-02 12:00", "")
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, "deadbeef")
	assert.ErrorIs(t, err, ErrPostNotFound)

	// 集合原样保留
	stored, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, post.ID, stored[0].ID)
	assert.Equal(t, model.PostStatusScheduled, stored[0].Status)
}

func TestCancelTwice(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)

	post, _, err := svc.Schedule(ctx, "post", "twitter", "2025-12-02 12:00", "")
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, post.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPublishDueTransitionsDuePosts(t *testing.T) {
	ctx := context.Background()
	svc, base := newTestScheduler(t)

	due, _, err := svc.Schedule(ctx, "due post", "twitter", "2025-12-02 12:00", "")
	require.NoError(t, err)
	_, _, err = svc.Schedule(ctx, "future post", "facebook", "2025-12-10 12:00", "")
	require.NoError(t, err)

	// 时钟拨过第一条的计划时间
	now := base.Add(30 * time.Hour)
	svc.now = func() time.Time { return now }

	published, err := svc.PublishDue(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, due.ID, published[0].ID)
	assert.Equal(t, model.PostStatusPosted, published[0].Status)
	require.NotNil(t, published[0].PostedAt)
	assert.True(t, published[0].PostedAt.Equal(now))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "future post", active[0].Content)

	// 已发布的记录不可再取消
	_, err = svc.Cancel(ctx, due.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPublishDueAtExactScheduleTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)

	post, _, err := svc.Schedule(ctx, "on the minute", "twitter", "2025-12-02 12:00", "")
	require.NoError(t, err)

	svc.now = func() time.Time { return post.ScheduleTime.Time }

	published, err := svc.PublishDue(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
}

func TestPublishDueNothingDue(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)

	_, _, err := svc.Schedule(ctx, "far out", "twitter", "2025-12-20 12:00", "")
	require.NoError(t, err)

	published, err := svc.PublishDue(ctx)
	require.NoError(t, err)
	assert.Empty(t, published)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestModifyAlwaysUnsupported(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)

	post, _, err := svc.Schedule(ctx, "post", "twitter", "2025-12-02 12:00", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Modify(ctx, post.ID), ErrModifyUnsupported)

	stored, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, model.PostStatusScheduled, stored[0].Status)
}

type failingPostRepo struct {
	loadErr error
	saveErr error
}

func (r *failingPostRepo) Load(ctx context.Context) ([]model.ScheduledPost, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return nil, nil
}

func (r *failingPostRepo) Save(ctx context.Context, posts []model.ScheduledPost) error {
	return r.saveErr
}

func (r *failingPostRepo) FindByStatus(ctx context.Context, status model.PostStatus) ([]model.ScheduledPost, error) {
	return nil, nil
}

func TestScheduleSurfacesPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	diskFull := errors.New("disk full")
	svc := NewSchedulerService(&failingPostRepo{saveErr: diskFull}).(*schedulerService)
	svc.now = func() time.Time { return time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC) }

	_, _, err := svc.Schedule(ctx, "post", "twitter", "2025-12-02 12:00", "")

	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.ErrorIs(t, err, diskFull)
}
