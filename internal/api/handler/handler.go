package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-suite/internal/service"
	"github.com/d60-Lab/social-suite/internal/tools"
	"github.com/d60-Lab/social-suite/pkg/response"
)

// Handler HTTP 处理器集合，持有工具注册表
type Handler struct {
	registry *tools.Registry
}

func NewHandler(registry *tools.Registry) *Handler {
	return &Handler{registry: registry}
}

// respondToolError 按错误类别映射状态码：
// 找不到资源 404，入参与业务校验 400，存储及未知错误 500
func respondToolError(c *gin.Context, err error) {
	var (
		optionErr   *service.InvalidOptionError
		platformErr *service.InvalidPlatformError
		rangeErr    *service.OutOfRangeError
		trackedErr  *service.AlreadyTrackedError
		notTracked  *service.NotTrackedError
		persistErr  *service.PersistenceError
	)
	switch {
	case errors.Is(err, tools.ErrToolNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.As(err, &notTracked):
		response.NotFound(c, err.Error())
	case errors.As(err, &persistErr):
		response.InternalError(c, err)
	case errors.Is(err, tools.ErrMissingRequiredArg),
		errors.Is(err, tools.ErrInvalidArgument),
		errors.Is(err, service.ErrInvalidTimeFormat),
		errors.Is(err, service.ErrPastSchedule),
		errors.Is(err, service.ErrNotEnoughCompetitors),
		errors.As(err, &optionErr),
		errors.As(err, &platformErr),
		errors.As(err, &rangeErr),
		errors.As(err, &trackedErr):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
