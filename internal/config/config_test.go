package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT", "ANALYSIS_WS_ENABLED",
		"ANALYSIS_MAX_UPLOAD_MB", "ANALYSIS_TIMEZONE", "ANALYSIS_TUNING_FILE",
		"ANALYSIS_BIAS_RATE", "ANALYSIS_MIN_MESSAGES",
		"REDIS_URL", "COUNTER_KEY_PREFIX", "COUNTER_DAILY_WINDOW",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Server.Addr)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard origin, got %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown, got %v", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Server.WebSocket {
		t.Fatalf("expected websocket enabled by default")
	}
	if cfg.Analysis.MaxUploadBytes != 20<<20 {
		t.Fatalf("expected 20MB upload limit, got %d", cfg.Analysis.MaxUploadBytes)
	}
	if cfg.Analysis.Location != nil {
		t.Fatalf("expected nil location, got %v", cfg.Analysis.Location)
	}
	if cfg.Analysis.Thresholds.MinMessages != 100 {
		t.Fatalf("expected MinMessages 100, got %d", cfg.Analysis.Thresholds.MinMessages)
	}
	if cfg.Counter.Enabled() {
		t.Fatalf("expected in-memory counter without REDIS_URL")
	}
	if cfg.Counter.KeyPrefix != "talklens:analysis" || cfg.Counter.DailyWindow != 30 {
		t.Fatalf("unexpected counter config %+v", cfg.Counter)
	}
	if cfg.Log.Level != zerolog.InfoLevel || cfg.Log.JSON {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadServerConfigPort(t *testing.T) {
	cases := map[string]string{
		"9000":           ":9000",
		":7000":          ":7000",
		"127.0.0.1:8081": "127.0.0.1:8081",
	}
	for raw, want := range cases {
		t.Setenv("PORT", raw)
		cfg, err := loadServerConfig()
		if err != nil {
			t.Fatalf("loadServerConfig(%q) err: %v", raw, err)
		}
		if cfg.Addr != want {
			t.Fatalf("expected %s, got %s", want, cfg.Addr)
		}
	}

	t.Setenv("PORT", "80 80")
	if _, err := loadServerConfig(); err == nil {
		t.Fatalf("expected error for port with space")
	}
}

func TestLoadServerConfigOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	cfg, err := loadServerConfig()
	if err != nil {
		t.Fatalf("loadServerConfig err: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestLoadAnalysisConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	yaml := "bias_rate: 0.65\nmin_messages: 50\nstory_avg_chars: 30\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write tuning file err: %v", err)
	}

	t.Setenv("ANALYSIS_TUNING_FILE", path)
	t.Setenv("ANALYSIS_MIN_MESSAGES", "80")
	t.Setenv("ANALYSIS_BIAS_RATE", "")
	t.Setenv("ANALYSIS_TIMEZONE", "Asia/Tokyo")
	t.Setenv("ANALYSIS_MAX_UPLOAD_MB", "5")

	cfg, err := loadAnalysisConfig()
	if err != nil {
		t.Fatalf("loadAnalysisConfig err: %v", err)
	}
	th := cfg.Thresholds
	if th.BiasRate != 0.65 {
		t.Fatalf("expected BiasRate from file 0.65, got %v", th.BiasRate)
	}
	if th.MinMessages != 80 {
		t.Fatalf("expected env MinMessages 80, got %d", th.MinMessages)
	}
	if th.StoryAvgChars != 30 {
		t.Fatalf("expected StoryAvgChars 30, got %v", th.StoryAvgChars)
	}
	if th.HighSpeedRate != 0.7 {
		t.Fatalf("expected default HighSpeedRate 0.7, got %v", th.HighSpeedRate)
	}
	if cfg.Location == nil || cfg.Location.String() != "Asia/Tokyo" {
		t.Fatalf("expected Asia/Tokyo, got %v", cfg.Location)
	}
	if cfg.MaxUploadBytes != 5<<20 {
		t.Fatalf("expected 5MB, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadAnalysisConfigErrors(t *testing.T) {
	t.Setenv("ANALYSIS_TIMEZONE", "Nowhere/Atlantis")
	if _, err := loadAnalysisConfig(); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}

	t.Setenv("ANALYSIS_TIMEZONE", "")
	t.Setenv("ANALYSIS_TUNING_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := loadAnalysisConfig(); err == nil {
		t.Fatalf("expected error for missing tuning file")
	}

	t.Setenv("ANALYSIS_TUNING_FILE", "")
	t.Setenv("ANALYSIS_BIAS_RATE", "high")
	if _, err := loadAnalysisConfig(); err == nil {
		t.Fatalf("expected error for non-numeric bias rate")
	}
}

func TestLoadCounterConfig(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("COUNTER_KEY_PREFIX", "demo")
	t.Setenv("COUNTER_DAILY_WINDOW", "7")

	cfg, err := loadCounterConfig()
	if err != nil {
		t.Fatalf("loadCounterConfig err: %v", err)
	}
	if !cfg.Enabled() {
		t.Fatalf("expected redis counter enabled")
	}
	if rc := cfg.RedisConfig(); rc.KeyPrefix != "demo" || rc.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected redis config %+v", rc)
	}
	if cfg.DailyWindow != 7 {
		t.Fatalf("expected window 7, got %d", cfg.DailyWindow)
	}

	t.Setenv("COUNTER_DAILY_WINDOW", "0")
	if _, err := loadCounterConfig(); err == nil {
		t.Fatalf("expected error for zero window")
	}
}

func TestLogConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := loadLogConfig()
	if err != nil {
		t.Fatalf("loadLogConfig err: %v", err)
	}
	if cfg.Level != zerolog.DebugLevel || !cfg.JSON {
		t.Fatalf("unexpected log config %+v", cfg)
	}

	var buf bytes.Buffer
	logger := cfg.Logger(&buf)
	logger.Info().Str("component", "test").Msg("hello")
	if !strings.Contains(buf.String(), `"component":"test"`) {
		t.Fatalf("expected json output, got %s", buf.String())
	}

	t.Setenv("LOG_FORMAT", "xml")
	if _, err := loadLogConfig(); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
