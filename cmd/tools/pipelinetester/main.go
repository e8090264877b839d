package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/meeting-minutes/backend/internal/config"
	summarymodel "github.com/zhouzirui/meeting-minutes/backend/internal/model/summary"
	"github.com/zhouzirui/meeting-minutes/backend/internal/service/ai"
	"github.com/zhouzirui/meeting-minutes/backend/internal/service/mail"
	"github.com/zhouzirui/meeting-minutes/backend/internal/service/summary"
)

func main() {
	cfg, logger, closeLog, err := loadRuntime()
	if err != nil {
		fatal(slog.Default(), "配置加载失败", err)
	}
	defer func() { _ = closeLog() }()

	mode := flag.String("mode", "", "测试模式: summary 或 email")
	transcriptPath := flag.String("transcript", "", "summary: 会议记录文本文件路径")
	instruction := flag.String("instruction", "", "summary: 自定义摘要指令")
	to := flag.String("to", "", "email: 收件人地址")
	subject := flag.String("subject", "Meeting summary", "email: 邮件主题")
	message := flag.String("message", "", "email: 摘要前的附言，可包含 \\n")
	summaryPath := flag.String("summary", "", "email: HTML 摘要文件路径")
	timeout := flag.Duration("timeout", 90*time.Second, "请求超时时间")

	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch *mode {
	case "summary":
		runSummary(ctx, logger, cfg, *transcriptPath, *instruction)
	case "email":
		runEmail(ctx, logger, cfg, *to, *subject, *message, *summaryPath)
	default:
		flag.Usage()
		fmt.Fprintln(os.Stderr, "请通过 -mode=summary 或 -mode=email 指定测试模式")
		os.Exit(2)
	}
}

// loadRuntime 读取 .env 与环境变量，并按 LOG_LEVEL / LOG_FILE 创建日志实例。
func loadRuntime() (*config.Config, *slog.Logger, func() error, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, closeLog := config.SetupLogger(cfg.Log)
	if envErr != nil {
		logger.Warn("无法加载 .env，改用系统环境变量", "error", envErr)
	}
	return cfg, logger, closeLog, nil
}

func runSummary(ctx context.Context, logger *slog.Logger, cfg *config.Config, path, instruction string) {
	if !cfg.AI.Enabled() {
		fatal(logger, "摘要服务未配置", fmt.Errorf("provider %s: set GROQ_API_KEY / SUMMARY_API_KEY or Ark credentials", cfg.AI.Provider))
	}
	transcript := readRequired(logger, "transcript", path)

	aiService, err := ai.NewService(ctx, cfg.AI, logger)
	if err != nil {
		fatal(logger, "初始化摘要服务失败", err)
	}

	svc := summary.NewService(aiService, summarymodel.NewMemoryStore(), summary.WithLogger(logger))

	var instr *string
	if instruction != "" {
		instr = &instruction
	}

	start := time.Now()
	record, err := svc.Generate(ctx, transcript, instr)
	if err != nil {
		fatal(logger, "生成摘要失败", err)
	}

	logger.Info("摘要生成完成", "id", record.ID, "elapsed", time.Since(start).Round(time.Millisecond))
	fmt.Println(record.Summary)
}

func runEmail(ctx context.Context, logger *slog.Logger, cfg *config.Config, to, subject, message, path string) {
	if to == "" {
		fatal(logger, "缺少收件人", fmt.Errorf("-to is required"))
	}
	summaryHTML := readRequired(logger, "summary", path)

	svc := mail.NewService(cfg.Mail, mail.NewSMTPTransport, logger)

	var msg *string
	if message != "" {
		unescaped := strings.ReplaceAll(message, `\n`, "\n")
		msg = &unescaped
	}

	if err := svc.Send(ctx, to, subject, msg, summaryHTML); err != nil {
		fatal(logger, "发送邮件失败", err)
	}
	logger.Info("邮件已发送", "to", to, "host", cfg.Mail.Host, "port", cfg.Mail.Port)
}

func readRequired(logger *slog.Logger, name, path string) string {
	if path == "" {
		fatal(logger, "缺少输入文件", fmt.Errorf("-%s is required", name))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatal(logger, "读取文件失败", err)
	}
	content := string(data)
	if strings.TrimSpace(content) == "" {
		fatal(logger, "输入文件为空", fmt.Errorf("%s is empty", path))
	}
	return content
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
