package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIConfig configures an OpenAI-compatible chat-completions endpoint
// such as Groq's /openai/v1.
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type openaiChatCompletions interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAIChatModel exposes a chat-completions endpoint as an eino chat model.
// Requests are never retried.
type OpenAIChatModel struct {
	completions openaiChatCompletions
	model       string
}

var _ model.BaseChatModel = (*OpenAIChatModel)(nil)

// NewOpenAIChatModel builds a client that authenticates with a bearer token.
func NewOpenAIChatModel(cfg OpenAIConfig) (*OpenAIChatModel, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("openai: api key required")
	}
	modelName := strings.TrimSpace(cfg.Model)
	if modelName == "" {
		return nil, errors.New("openai: model required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	client := openai.NewClient(opts...)
	return &OpenAIChatModel{
		completions: &client.Chat.Completions,
		model:       modelName,
	}, nil
}

// Generate sends one chat-completions request and returns the first choice.
// A response without choices yields an empty assistant message.
func (m *OpenAIChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	params, err := m.buildParams(input, opts...)
	if err != nil {
		return nil, err
	}

	completion, err := m.completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}

	if completion == nil || len(completion.Choices) == 0 {
		return schema.AssistantMessage("", nil), nil
	}

	choice := completion.Choices[0]
	msg := schema.AssistantMessage(choice.Message.Content, nil)
	msg.ResponseMeta = &schema.ResponseMeta{
		FinishReason: choice.FinishReason,
		Usage: &schema.TokenUsage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}
	return msg, nil
}

// Stream delivers the Generate result as a single-chunk stream.
func (m *OpenAIChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func (m *OpenAIChatModel) buildParams(input []*schema.Message, opts ...model.Option) (openai.ChatCompletionNewParams, error) {
	modelName := m.model
	options := model.GetCommonOptions(&model.Options{Model: &modelName}, opts...)

	messages, err := convertMessages(input)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(*options.Model),
		Messages: messages,
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(float64(*options.Temperature))
	}
	if options.MaxTokens != nil {
		params.MaxTokens = openai.Int(int64(*options.MaxTokens))
	}
	return params, nil
}

func convertMessages(input []*schema.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(input))
	for _, msg := range input {
		if msg == nil {
			continue
		}
		switch msg.Role {
		case schema.System:
			messages = append(messages, openai.SystemMessage(msg.Content))
		case schema.User:
			messages = append(messages, openai.UserMessage(msg.Content))
		case schema.Assistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			return nil, fmt.Errorf("openai: unsupported message role %q", msg.Role)
		}
	}
	return messages, nil
}
