package email

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/meeting-minutes/backend/internal/handler/httperror"
	"github.com/zhouzirui/meeting-minutes/backend/internal/model/email"
	"github.com/zhouzirui/meeting-minutes/backend/pkg/utils"
	"github.com/zhouzirui/meeting-minutes/backend/pkg/validation"
)

// Sender is the email dispatch service seen by the HTTP layer.
type Sender interface {
	Send(ctx context.Context, recipient, subject string, message *string, summaryHTML string) error
}

// Handler 邮件发送的HTTP处理器
type Handler struct {
	svc       Sender
	validator *validation.Validator
	logger    *slog.Logger
}

// New 创建邮件处理器
func New(svc Sender, validator *validation.Validator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		svc:       svc,
		validator: validator,
		logger:    logger,
	}
}

// RegisterRoutes 注册邮件相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/send-email", h.handleSend)
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var payload email.SendRequest
	if err := utils.DecodeJSON(w, r, &payload, utils.MaxBodyBytes); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.validator.Struct(&payload)
	if err != nil {
		h.logger.Error("validation failed", "error", err)
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.svc.Send(r.Context(), payload.Recipient, payload.Subject, payload.Message, payload.Summary); err != nil {
		httperror.Respond(w, h.logger, "send-email", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, email.SendResponse{Message: "Email sent successfully"})
}
