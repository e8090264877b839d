package config

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger 创建日志实例：stderr 输出文本，配置了 LOG_FILE 时额外写入 JSON。
// 返回的 cleanup 用于关闭日志文件。
func SetupLogger(cfg LogConfig) (*slog.Logger, func() error) {
	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level})
	if cfg.File == "" {
		return slog.New(stderrHandler), func() error { return nil }
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger := slog.New(stderrHandler)
		logger.Error("failed to open log file, using stderr only", "error", err, "file", cfg.File)
		return logger, func() error { return nil }
	}

	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: cfg.Level})
	logger := slog.New(slogmulti.Fanout(stderrHandler, fileHandler))

	return logger, file.Close
}

// SetupLoggerWithWriters 使用自定义 writer 创建日志实例（测试用）。
func SetupLoggerWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	stderrHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(stderrHandler, fileHandler))
}
