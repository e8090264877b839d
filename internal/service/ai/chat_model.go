package ai

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/components/model"

	"github.com/zhouzirui/meeting-minutes/backend/internal/config"
)

// NewChatModel selects the chat model implementation for cfg.Provider.
func NewChatModel(ctx context.Context, cfg config.AIConfig) (model.BaseChatModel, error) {
	if !cfg.Enabled() {
		return nil, errors.New("summary provider credentials or model missing")
	}

	switch cfg.Provider {
	case config.ProviderArk:
		return cfg.NewArkChatModel(ctx)
	default:
		chatModel, err := NewOpenAIChatModel(OpenAIConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return chatModel, nil
	}
}
