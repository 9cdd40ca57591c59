package tools

import (
	"context"
	"time"
)

// Category 工具分组，沿用工具集最初的 core / enhanced 两档划分
type Category string

const (
	CategoryCore     Category = "core"
	CategoryEnhanced Category = "enhanced"
)

// Property 单个参数的模式描述，Default 仅用于目录展示
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
}

// Schema 工具入参模式，Required 中的参数缺失时拒绝执行
type Schema struct {
	Required   []string            `json:"required"`
	Properties map[string]Property `json:"properties"`
}

// ExecuteFunc 工具执行函数，输出面向用户的文本报告
type ExecuteFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool 可注册执行的工具定义
type Tool struct {
	Name        string
	Description string
	Category    Category
	Schema      Schema
	Execute     ExecuteFunc
}

// Validate 注册前检查定义完整性
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrToolNameEmpty
	}
	if t.Execute == nil {
		return ErrToolExecuteNil
	}
	return nil
}

// Result 一次执行的输出与耗时
type Result struct {
	ToolName string
	Output   string
	Err      error
	Duration time.Duration
}

// IsSuccess 执行是否成功
func (r *Result) IsSuccess() bool {
	return r.Err == nil
}
