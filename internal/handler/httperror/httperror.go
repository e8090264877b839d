package httperror

import (
	"log/slog"
	"net/http"

	"github.com/zhouzirui/meeting-minutes/backend/internal/apperror"
	"github.com/zhouzirui/meeting-minutes/backend/pkg/utils"
)

// Respond 将服务层错误转换为状态码与可展示的消息，细节仅写入日志。
func Respond(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	appErr, ok := apperror.As(err)
	if !ok {
		logger.Error("unclassified error", "op", op, "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := appErr.Kind.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "op", op, "kind", appErr.Kind.String(), "error", err)
	} else {
		logger.Info("request rejected", "op", op, "kind", appErr.Kind.String(), "message", appErr.Message)
	}
	utils.RespondError(w, status, appErr.Message)
}
