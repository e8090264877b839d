package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/meeting-minutes/backend/internal/apperror"
	"github.com/zhouzirui/meeting-minutes/backend/internal/config"
)

// ErrEmptyCompletion is the cause recorded when the provider answers without text.
var ErrEmptyCompletion = errors.New("completion contained no text")

// Service turns transcripts into HTML summaries through a prompt -> chat model chain.
type Service struct {
	chain       compose.Runnable[map[string]any, *schema.Message]
	temperature float32
	maxTokens   int
	logger      *slog.Logger
}

// NewService creates the chat model described by cfg and compiles the summary chain.
func NewService(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*Service, error) {
	chatModel, err := NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return NewServiceWithModel(ctx, chatModel, cfg, logger)
}

// NewServiceWithModel compiles the summary chain around an existing chat model.
func NewServiceWithModel(ctx context.Context, chatModel model.BaseChatModel, cfg config.AIConfig, logger *slog.Logger) (*Service, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(SystemPrompt),
		schema.UserMessage("{request}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile summary chain: %w", err)
	}

	return &Service{
		chain:       runnable,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger.With("component", "ai"),
	}, nil
}

// Summarize asks the chat model for an HTML summary of transcript.
func (s *Service) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	input := map[string]any{
		"request": BuildUserPrompt(transcript, instruction),
	}

	opts := []model.Option{model.WithTemperature(s.temperature)}
	if s.maxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(s.maxTokens))
	}

	response, err := s.chain.Invoke(ctx, input, compose.WithChatModelOption(opts...))
	if err != nil {
		return "", apperror.Upstream("Failed to generate summary", fmt.Errorf("failed to run summary chain: %w", err))
	}

	if response == nil || strings.TrimSpace(response.Content) == "" {
		return "", apperror.Upstream("No summary generated", ErrEmptyCompletion)
	}

	s.logger.Debug("summary completion received", "transcript_len", len(transcript), "summary_len", len(response.Content))
	return response.Content, nil
}
