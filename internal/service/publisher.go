package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/social-suite/pkg/logger"
)

// PublishWorker 周期扫描计划时间已到的记录并完成 scheduled → posted 流转。
// 发布只是本地状态变更，不触达任何平台
type PublishWorker struct {
	scheduler    SchedulerService
	pollInterval time.Duration
}

func NewPublishWorker(scheduler SchedulerService, pollInterval time.Duration) *PublishWorker {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	return &PublishWorker{scheduler: scheduler, pollInterval: pollInterval}
}

// Start 启动后台轮询；返回停止函数
func (w *PublishWorker) Start() func(context.Context) error {
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				w.sweep(context.Background())
			}
		}
	}()
	return func(ctx context.Context) error {
		close(stop)
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *PublishWorker) sweep(ctx context.Context) {
	published, err := w.scheduler.PublishDue(ctx)
	if err != nil {
		logger.Warn("publish sweep failed", zap.Error(err))
		return
	}
	for _, p := range published {
		logger.Info("post published",
			zap.String("post", p.ID),
			zap.String("scheduled_for", p.ScheduleTime.String()),
			zap.Int("platforms", len(p.Platforms)))
	}
}
