package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/social-suite/config"
	"github.com/d60-Lab/social-suite/internal/api"
	"github.com/d60-Lab/social-suite/internal/api/handler"
	"github.com/d60-Lab/social-suite/internal/cache"
	"github.com/d60-Lab/social-suite/internal/metrics"
	"github.com/d60-Lab/social-suite/internal/repository"
	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
	"github.com/d60-Lab/social-suite/internal/tools/social"
	"github.com/d60-Lab/social-suite/pkg/database"
	"github.com/d60-Lab/social-suite/pkg/logger"
	"github.com/d60-Lab/social-suite/pkg/telemetry"
)

// @title Social Suite API
// @version 1.0
// @description 社交媒体管理工具调度服务：发帖排期、标签生成、数据分析、趋势与竞品监控
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	flushSentry, err := telemetry.InitSentry(cfg)
	if err != nil {
		logger.L().Fatal("init sentry", zap.Error(err))
	}
	defer flushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		logger.L().Fatal("init tracer", zap.Error(err))
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(c); err != nil {
			logger.L().Warn("shutdown tracer", zap.Error(err))
		}
	}()

	deps, err := buildDeps(ctx, cfg)
	if err != nil {
		logger.L().Fatal("build dependencies", zap.Error(err))
	}

	reg := tools.NewRegistry()
	social.RegisterAll(reg, deps)

	if cfg.Publisher.Enabled {
		worker := service.NewPublishWorker(deps.Scheduler, cfg.Publisher.Interval)
		stopWorker := worker.Start()
		defer func() {
			c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := stopWorker(c); err != nil {
				logger.L().Warn("stop publish worker", zap.Error(err))
			}
		}()
		logger.L().Info("publish worker started", zap.Duration("interval", cfg.Publisher.Interval))
	}

	router := api.NewRouter(cfg, handler.NewHandler(reg))
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.L().Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("backend", cfg.Data.Backend),
			zap.Int("tools", reg.Count()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildDeps 按配置选择存储后端、可选的 Redis 报告缓存，并装配全部服务
func buildDeps(ctx context.Context, cfg *config.Config) (social.Deps, error) {
	var (
		postRepo repository.PostRepository
		compRepo repository.CompetitorRepository
	)
	switch cfg.Data.Backend {
	case "file":
		postRepo = repository.NewFilePostRepository(cfg.Data.Dir)
		compRepo = repository.NewFileCompetitorRepository(cfg.Data.Dir)
	case "database":
		db, err := database.InitDB(cfg)
		if err != nil {
			return social.Deps{}, err
		}
		if err := repository.InitSchema(db); err != nil {
			return social.Deps{}, err
		}
		postRepo = repository.NewDBPostRepository(db)
		compRepo = repository.NewDBCompetitorRepository(db)
	default:
		return social.Deps{}, fmt.Errorf("unsupported data backend: %s", cfg.Data.Backend)
	}

	var reportCache cache.ReportCache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return social.Deps{}, fmt.Errorf("connect redis: %w", err)
		}
		reportCache = cache.NewRedisReportCache(client, cfg.Redis.TTL)
		logger.L().Info("report cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	provider := metrics.NewMockProvider(cfg.Provider.Seed)
	return social.Deps{
		Scheduler:   service.NewSchedulerService(postRepo),
		Hashtags:    service.NewHashtagService(cfg.Provider.Seed),
		Analytics:   service.NewAnalyticsService(provider),
		Trends:      service.NewTrendsService(),
		Audience:    service.NewAudienceService(provider),
		Competitors: service.NewCompetitorService(compRepo, provider),
		Content:     service.NewContentService(cfg.Provider.Seed),
		Cache:       reportCache,
	}, nil
}
