package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid schedule time format")
	ErrPastSchedule      = errors.New("schedule time must be in the future")
	ErrPostNotFound      = errors.New("scheduled post not found")
	ErrModifyUnsupported = errors.New("modify is not implemented")

	ErrNotEnoughCompetitors = errors.New("at least 2 competitors are required for comparison")
)

// InvalidPlatformError 平台串中含无法识别的平台名（保留原始 token，含空串）
type InvalidPlatformError struct {
	Platforms []string
}

func (e *InvalidPlatformError) Error() string {
	return fmt.Sprintf("invalid platforms: %s", strings.Join(e.Platforms, ", "))
}

// InvalidOptionError 枚举参数取值非法
type InvalidOptionError struct {
	Field string
	Value string
	Valid []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s %q, valid options: %s", e.Field, e.Value, strings.Join(e.Valid, ", "))
}

// OutOfRangeError 数值参数超出允许区间
type OutOfRangeError struct {
	Field    string
	Min, Max int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d", e.Field, e.Min, e.Max)
}

// AlreadyTrackedError 竞品重复添加（名称大小写不敏感判重）
type AlreadyTrackedError struct {
	Name string
}

func (e *AlreadyTrackedError) Error() string {
	return fmt.Sprintf("competitor %q is already being tracked", e.Name)
}

// NotTrackedError 竞品不在跟踪列表中
type NotTrackedError struct {
	Name string
}

func (e *NotTrackedError) Error() string {
	return fmt.Sprintf("competitor %q is not tracked", e.Name)
}

// PersistenceError 底层存储读写失败，操作不得报告成功
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
