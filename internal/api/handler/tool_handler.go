package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-suite/internal/tools"
	"github.com/d60-Lab/social-suite/pkg/response"
)

// toolSummary 工具目录条目
type toolSummary struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Schema      tools.Schema `json:"schema"`
}

type executeRequest struct {
	Arguments map[string]any `json:"arguments"`
}

// ListTools 工具目录
// @Summary 列出全部可用工具
// @Tags 工具
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/tools [get]
func (h *Handler) ListTools(c *gin.Context) {
	list := h.registry.List()
	summaries := make([]toolSummary, 0, len(list))
	for _, tool := range list {
		summaries = append(summaries, toolSummary{
			Name:        tool.Name,
			Description: tool.Description,
			Category:    string(tool.Category),
			Schema:      tool.Schema,
		})
	}
	response.Success(c, gin.H{"total": len(summaries), "tools": summaries})
}

// ExecuteTool 执行指定工具并返回文本报告
// @Summary 执行工具
// @Tags 工具
// @Accept json
// @Produce json
// @Param name path string true "工具名"
// @Param request body executeRequest false "工具入参"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/tools/{name} [post]
func (h *Handler) ExecuteTool(c *gin.Context) {
	name := c.Param("name")

	// 空请求体等价于无参调用
	var req executeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Arguments == nil {
		req.Arguments = map[string]any{}
	}

	result, err := h.registry.Execute(c.Request.Context(), name, req.Arguments)
	if err != nil {
		respondToolError(c, err)
		return
	}
	response.Success(c, gin.H{
		"tool":        result.ToolName,
		"duration_ms": result.Duration.Milliseconds(),
		"report":      result.Output,
	})
}
