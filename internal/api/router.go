package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	sentrygin "github.com/getsentry/sentry-go/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/social-suite/config"
	_ "github.com/d60-Lab/social-suite/docs"
	"github.com/d60-Lab/social-suite/internal/api/handler"
	"github.com/d60-Lab/social-suite/internal/api/middleware"
	"github.com/d60-Lab/social-suite/pkg/telemetry"
)

// NewRouter 装配中间件与路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.AccessLog())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	if cfg.Telemetry.Enabled {
		r.Use(otelgin.Middleware(telemetry.ServiceName))
	}
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	r.GET("/health", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/tools", h.ListTools)
		v1.POST("/tools/:name", h.ExecuteTool)
	}
	return r
}
