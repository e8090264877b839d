package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FILE",
		"SUMMARY_PROVIDER", "SUMMARY_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY",
		"SUMMARY_MODEL", "SUMMARY_BASE_URL", "SUMMARY_TEMPERATURE", "SUMMARY_MAX_TOKENS", "SUMMARY_TIMEOUT",
		"ARK_API_KEY", "ARK_ACCESS_KEY", "ARK_SECRET_KEY", "ARK_REGION",
		"MAIL_HOST", "MAIL_PORT", "MAIL_USER", "MAIL_PASS", "MAIL_FROM", "MAIL_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)

	assert.Equal(t, ProviderGroq, cfg.AI.Provider)
	assert.Equal(t, defaultGroqModel, cfg.AI.Model)
	assert.Equal(t, defaultGroqBaseURL, cfg.AI.BaseURL)
	assert.InDelta(t, 0.3, cfg.AI.Temperature, 1e-6)
	assert.Equal(t, 2000, cfg.AI.MaxTokens)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.AI.Enabled(), "no credential configured")

	assert.False(t, cfg.Mail.Complete())
	assert.Equal(t, 30*time.Second, cfg.Mail.Timeout)
}

func TestLoadGroqCredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", " gsk_test ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gsk_test", cfg.AI.APIKey)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoadArkRequiresModel(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUMMARY_PROVIDER", "ark")
	t.Setenv("ARK_API_KEY", "ark-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.AI.Enabled())

	t.Setenv("SUMMARY_MODEL", "doubao-pro")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.AI.Enabled())
	assert.Equal(t, defaultArkBaseURL, cfg.AI.BaseURL)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUMMARY_PROVIDER", "mystery")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsInvalidNumbers(t *testing.T) {
	cases := map[string]string{
		"SUMMARY_TEMPERATURE": "warm",
		"SUMMARY_MAX_TOKENS":  "lots",
		"MAIL_PORT":           "smtp",
		"MAIL_TIMEOUT":        "1.5",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadRejectsOutOfRangeMailPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAIL_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
}

func TestMailConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAIL_HOST", "smtp.example.com")
	t.Setenv("MAIL_PORT", "465")
	t.Setenv("MAIL_USER", "bot@example.com")
	t.Setenv("MAIL_PASS", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Mail.Complete())
	assert.True(t, cfg.Mail.ImplicitTLS())
	assert.Equal(t, "bot@example.com", cfg.Mail.Sender(), "sender falls back to user")

	cfg.Mail.From = "Minutes <minutes@example.com>"
	assert.Equal(t, "Minutes <minutes@example.com>", cfg.Mail.Sender())

	cfg.Mail.Port = 587
	assert.False(t, cfg.Mail.ImplicitTLS())
}

func TestParseAddr(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ":8080"},
		{in: "9000", want: ":9000"},
		{in: ":9000", want: ":9000"},
		{in: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{in: "90 00", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseAddr(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestSetupLoggerWithWritersFansOut(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("summary generated", "id", "abc")

	assert.Contains(t, stderr.String(), "summary generated")
	assert.NotContains(t, stderr.String(), "hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &entry))
	assert.Equal(t, "summary generated", entry["msg"])
	assert.Equal(t, "abc", entry["id"])
}
