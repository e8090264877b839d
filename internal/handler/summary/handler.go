package summary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/meeting-minutes/backend/internal/handler/httperror"
	"github.com/zhouzirui/meeting-minutes/backend/internal/model/summary"
	"github.com/zhouzirui/meeting-minutes/backend/pkg/utils"
	"github.com/zhouzirui/meeting-minutes/backend/pkg/validation"
)

// Generator is the summary service seen by the HTTP layer.
type Generator interface {
	Generate(ctx context.Context, transcript string, instruction *string) (summary.Record, error)
	Get(ctx context.Context, id string) (summary.Record, bool)
}

// Handler 摘要生成的HTTP处理器
type Handler struct {
	svc       Generator
	validator *validation.Validator
	logger    *slog.Logger
}

// New 创建摘要处理器
func New(svc Generator, validator *validation.Validator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		svc:       svc,
		validator: validator,
		logger:    logger,
	}
}

// RegisterRoutes 注册摘要相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate-summary", h.handleGenerate)
	r.Get("/summaries/{id}", h.handleGet)
}

// handleGenerate 校验请求并生成摘要
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload summary.GenerateRequest
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

	record, err := h.svc.Generate(r.Context(), payload.Transcript, payload.CustomInstruction)
	if err != nil {
		httperror.Respond(w, h.logger, "generate-summary", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, summary.GenerateResponse{
		ID:      record.ID,
		Summary: record.Summary,
	})
}

// handleGet 返回已生成的摘要记录
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, ok := h.svc.Get(r.Context(), id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Summary not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, record)
}
