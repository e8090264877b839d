package middleware

import (
	"log/slog"
	"net/http"

	slogchi "github.com/samber/slog-chi"
)

// RequestLogger logs every request with its status and duration.
// 4xx responses are logged at WARN, 5xx at ERROR.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return slogchi.NewWithConfig(logger, slogchi.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	})
}
