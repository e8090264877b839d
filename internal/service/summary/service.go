package summary

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/zhouzirui/meeting-minutes/backend/internal/apperror"
	"github.com/zhouzirui/meeting-minutes/backend/internal/model/summary"
)

// CompletionProvider turns a transcript and an optional directive into HTML.
type CompletionProvider interface {
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}

// Service generates summaries and records them in a Store.
type Service struct {
	provider CompletionProvider
	store    summary.Store
	timeout  time.Duration
	logger   *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithTimeout bounds each provider call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService wires a provider and a store. A nil provider means the provider
// credential is not configured; Generate then fails without network I/O.
func NewService(provider CompletionProvider, store summary.Store, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		store:    store,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "summary")
	return s
}

// Configured reports whether a completion provider is available.
func (s *Service) Configured() bool {
	return s.provider != nil
}

// Generate requests a summary for transcript and stores it. Nothing is stored
// when the provider fails.
func (s *Service) Generate(ctx context.Context, transcript string, instruction *string) (summary.Record, error) {
	if s.provider == nil {
		s.logger.Error("completion provider not configured")
		return summary.Record{}, apperror.Configuration("Summary provider API key not configured")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	directive := ""
	if instruction != nil {
		directive = *instruction
	}

	text, err := s.provider.Summarize(ctx, transcript, directive)
	if err != nil {
		if _, ok := apperror.As(err); ok {
			return summary.Record{}, err
		}
		return summary.Record{}, apperror.Upstream("Failed to generate summary", err)
	}
	if strings.TrimSpace(text) == "" {
		return summary.Record{}, apperror.Upstream("No summary generated", nil)
	}

	record := s.store.Create(ctx, summary.NewRecord{
		Transcript:        transcript,
		CustomInstruction: normalizeInstruction(instruction),
		Summary:           text,
	})

	s.logger.Info("summary generated", "id", record.ID, "transcript_len", len(transcript), "summary_len", len(text))
	return record, nil
}

// Get returns a previously generated record.
func (s *Service) Get(ctx context.Context, id string) (summary.Record, bool) {
	return s.store.Get(ctx, id)
}

// normalizeInstruction stores an empty instruction as absent.
func normalizeInstruction(instruction *string) *string {
	if instruction == nil || *instruction == "" {
		return nil
	}
	return instruction
}
