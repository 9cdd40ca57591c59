package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// global 默认 no-op，Init 之前的调用安静丢弃
var global = zap.NewNop()

// Init 构建全局 logger；level 为 zap 级别名，format ∈ {json, console}
func Init(level, format string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	switch format {
	case "console":
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	case "json", "":
		cfg.Encoding = "json"
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	global = built
	return nil
}

// L 取全局 logger
func L() *zap.Logger { return global }

// ReplaceL 替换全局 logger，测试注入用
func ReplaceL(l *zap.Logger) { global = l }

// Sync 刷新缓冲，进程退出前调用
func Sync() { _ = global.Sync() }

func Debug(msg string, fields ...zap.Field) { global.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { global.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { global.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { global.Error(msg, fields...) }
