package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Provider names accepted by SUMMARY_PROVIDER.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderArk    = "ark"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1/"
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultArkBaseURL  = "https://ark.cn-beijing.volces.com/api/v3"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	Log    LogConfig
	AI     AIConfig
	Mail   MailConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	mail, err := loadMailConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Log: logCfg, AI: ai, Mail: mail}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	addr, err := ParseAddr(os.Getenv("PORT"))
	if err != nil {
		return ServerConfig{}, err
	}

	origins := splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"))
	return ServerConfig{Addr: addr, AllowedOrigins: origins}, nil
}

// ParseAddr accepts a bare port ("8080") or a listen address (":8080", "127.0.0.1:8080").
func ParseAddr(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	if strings.Contains(port, ":") {
		return port, nil
	}

	return ":" + port, nil
}

// LogConfig 描述日志输出配置。
type LogConfig struct {
	Level slog.Level
	File  string
}

func loadLogConfig() (LogConfig, error) {
	level := slog.LevelInfo
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return LogConfig{}, fmt.Errorf("invalid LOG_LEVEL value %q: %w", raw, err)
		}
	}

	return LogConfig{
		Level: level,
		File:  strings.TrimSpace(os.Getenv("LOG_FILE")),
	}, nil
}

// AIConfig 描述摘要生成所用的大模型配置。
type AIConfig struct {
	Provider    string
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Enabled 表示是否提供了必需的密钥。
func (c AIConfig) Enabled() bool {
	if c.Model == "" {
		return false
	}
	if c.Provider == ProviderArk {
		return c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != "")
	}
	return c.APIKey != ""
}

// NewArkChatModel 使用 Ark 配置创建一个模型实例。
func (c AIConfig) NewArkChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials or model missing: provide ARK_API_KEY or ARK_ACCESS_KEY/ARK_SECRET_KEY plus SUMMARY_MODEL")
	}

	temperature := c.Temperature
	maxTokens := c.MaxTokens
	timeout := c.Timeout
	retries := 0

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		Timeout:     &timeout,
		RetryTimes:  &retries,
	}

	chatModel, err := ark.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return chatModel, nil
}

func loadAIConfig() (AIConfig, error) {
	provider := strings.ToLower(getEnvOrDefault("SUMMARY_PROVIDER", ProviderGroq))
	switch provider {
	case ProviderGroq, ProviderOpenAI, ProviderArk:
	default:
		return AIConfig{}, fmt.Errorf("invalid SUMMARY_PROVIDER value %q: want groq, openai or ark", provider)
	}

	temperature, err := parseOptionalFloat32Env("SUMMARY_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}
	temp := float32(0.3)
	if temperature != nil {
		temp = *temperature
	}

	maxTokens, err := parseOptionalIntEnv("SUMMARY_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}
	tokens := 2000
	if maxTokens != nil && *maxTokens > 0 {
		tokens = *maxTokens
	}

	timeout, err := parseSecondsEnv("SUMMARY_TIMEOUT", 60)
	if err != nil {
		return AIConfig{}, err
	}

	cfg := AIConfig{
		Provider:    provider,
		Temperature: temp,
		MaxTokens:   tokens,
		Timeout:     timeout,
		Model:       strings.TrimSpace(os.Getenv("SUMMARY_MODEL")),
	}

	switch provider {
	case ProviderArk:
		cfg.APIKey = strings.TrimSpace(os.Getenv("ARK_API_KEY"))
		cfg.AccessKey = strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY"))
		cfg.SecretKey = strings.TrimSpace(os.Getenv("ARK_SECRET_KEY"))
		cfg.BaseURL = getEnvOrDefault("SUMMARY_BASE_URL", defaultArkBaseURL)
		cfg.Region = getEnvOrDefault("ARK_REGION", "cn-beijing")
	case ProviderGroq:
		cfg.APIKey = firstNonEmpty(os.Getenv("SUMMARY_API_KEY"), os.Getenv("GROQ_API_KEY"))
		cfg.BaseURL = getEnvOrDefault("SUMMARY_BASE_URL", defaultGroqBaseURL)
		if cfg.Model == "" {
			cfg.Model = defaultGroqModel
		}
	case ProviderOpenAI:
		cfg.APIKey = firstNonEmpty(os.Getenv("SUMMARY_API_KEY"), os.Getenv("OPENAI_API_KEY"))
		cfg.BaseURL = strings.TrimSpace(os.Getenv("SUMMARY_BASE_URL"))
	}

	return cfg, nil
}

// MailConfig 描述 SMTP 中继配置。
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

// Complete reports whether host, port, user and password are all present.
func (c MailConfig) Complete() bool {
	return c.Host != "" && c.Port > 0 && c.User != "" && c.Password != ""
}

// ImplicitTLS is true for the SMTPS port; every other port starts in plaintext.
func (c MailConfig) ImplicitTLS() bool {
	return c.Port == 465
}

// Sender returns MAIL_FROM, falling back to the SMTP user.
func (c MailConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.User
}

func loadMailConfig() (MailConfig, error) {
	port, err := parseOptionalIntEnv("MAIL_PORT")
	if err != nil {
		return MailConfig{}, err
	}
	mailPort := 0
	if port != nil {
		if *port < 1 || *port > 65535 {
			return MailConfig{}, fmt.Errorf("invalid MAIL_PORT value %d: out of range", *port)
		}
		mailPort = *port
	}

	timeout, err := parseSecondsEnv("MAIL_TIMEOUT", 30)
	if err != nil {
		return MailConfig{}, err
	}

	return MailConfig{
		Host:     strings.TrimSpace(os.Getenv("MAIL_HOST")),
		Port:     mailPort,
		User:     strings.TrimSpace(os.Getenv("MAIL_USER")),
		Password: os.Getenv("MAIL_PASS"),
		From:     strings.TrimSpace(os.Getenv("MAIL_FROM")),
		Timeout:  timeout,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseSecondsEnv 解析以秒为单位的超时，非正数回退到默认值。
func parseSecondsEnv(key string, defaultSeconds int) (time.Duration, error) {
	seconds, err := parseOptionalIntEnv(key)
	if err != nil {
		return 0, err
	}
	if seconds == nil || *seconds <= 0 {
		return time.Duration(defaultSeconds) * time.Second, nil
	}
	return time.Duration(*seconds) * time.Second, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalFloat32Env(key string) (*float32, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	result := float32(val)
	return &result, nil
}
