package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-suite/pkg/response"
)

// Health 存活探针
// @Summary 健康检查
// @Tags 运维
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status": "ok",
		"tools":  h.registry.Count(),
	})
}
