package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zhouzirui/talklens/backend/internal/analysis/relationship"
	"github.com/zhouzirui/talklens/backend/internal/service/counter"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	Counter  CounterConfig
	Log      LogConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	analysis, err := loadAnalysisConfig()
	if err != nil {
		return nil, err
	}

	counterCfg, err := loadCounterConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Analysis: analysis, Counter: counterCfg, Log: logCfg}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	WebSocket       bool
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	addr, err := parseAddr(os.Getenv("PORT"))
	if err != nil {
		return ServerConfig{}, err
	}

	shutdown := 10 * time.Second
	if seconds, err := parseOptionalIntEnv("SHUTDOWN_TIMEOUT"); err != nil {
		return ServerConfig{}, err
	} else if seconds != nil && *seconds > 0 {
		shutdown = time.Duration(*seconds) * time.Second
	}

	websocket, err := parseBoolEnv("ANALYSIS_WS_ENABLED", true)
	if err != nil {
		return ServerConfig{}, err
	}

	return ServerConfig{
		Addr:            addr,
		AllowedOrigins:  splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout: shutdown,
		WebSocket:       websocket,
	}, nil
}

func parseAddr(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}

// AnalysisConfig 描述解析管线相关配置
type AnalysisConfig struct {
	MaxUploadBytes int64
	Location       *time.Location
	Thresholds     relationship.Thresholds
}

func loadAnalysisConfig() (AnalysisConfig, error) {
	maxMB := 20
	if override, err := parseOptionalIntEnv("ANALYSIS_MAX_UPLOAD_MB"); err != nil {
		return AnalysisConfig{}, err
	} else if override != nil {
		if *override < 1 {
			maxMB = 1
		} else {
			maxMB = *override
		}
	}

	// 未设置时使用本地时区
	var loc *time.Location
	if name := strings.TrimSpace(os.Getenv("ANALYSIS_TIMEZONE")); name != "" {
		l, err := time.LoadLocation(name)
		if err != nil {
			return AnalysisConfig{}, fmt.Errorf("invalid ANALYSIS_TIMEZONE value %q: %w", name, err)
		}
		loc = l
	}

	thresholds := relationship.DefaultThresholds()
	if path := strings.TrimSpace(os.Getenv("ANALYSIS_TUNING_FILE")); path != "" {
		loaded, err := LoadThresholds(path)
		if err != nil {
			return AnalysisConfig{}, err
		}
		thresholds = loaded
	}

	biasRate, err := parseOptionalFloatEnv("ANALYSIS_BIAS_RATE")
	if err != nil {
		return AnalysisConfig{}, err
	}
	if biasRate != nil {
		thresholds.BiasRate = *biasRate
	}

	minMessages, err := parseOptionalIntEnv("ANALYSIS_MIN_MESSAGES")
	if err != nil {
		return AnalysisConfig{}, err
	}
	if minMessages != nil {
		thresholds.MinMessages = *minMessages
	}

	return AnalysisConfig{
		MaxUploadBytes: int64(maxMB) << 20,
		Location:       loc,
		Thresholds:     thresholds,
	}, nil
}

// CounterConfig 描述分析计数器配置，RedisURL 为空时使用内存实现
type CounterConfig struct {
	RedisURL    string
	KeyPrefix   string
	DailyWindow int
}

// Enabled 表示是否配置了 Redis。
func (c CounterConfig) Enabled() bool {
	return c.RedisURL != ""
}

// RedisConfig converts to the counter store settings.
func (c CounterConfig) RedisConfig() counter.RedisConfig {
	cfg := counter.DefaultRedisConfig(c.RedisURL)
	cfg.KeyPrefix = c.KeyPrefix
	return cfg
}

func loadCounterConfig() (CounterConfig, error) {
	window := 30
	if override, err := parseOptionalIntEnv("COUNTER_DAILY_WINDOW"); err != nil {
		return CounterConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return CounterConfig{}, fmt.Errorf("invalid COUNTER_DAILY_WINDOW value %d: must be positive", *override)
		}
		window = *override
	}

	return CounterConfig{
		RedisURL:    strings.TrimSpace(os.Getenv("REDIS_URL")),
		KeyPrefix:   getEnvOrDefault("COUNTER_KEY_PREFIX", counter.DefaultKeyPrefix),
		DailyWindow: window,
	}, nil
}

// LogConfig 描述日志级别与输出格式
type LogConfig struct {
	Level zerolog.Level
	JSON  bool
}

// Logger 使用配置创建根日志实例。
func (c LogConfig) Logger(out io.Writer) zerolog.Logger {
	if !c.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(c.Level).With().Timestamp().Logger()
}

func loadLogConfig() (LogConfig, error) {
	raw := getEnvOrDefault("LOG_LEVEL", "info")
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return LogConfig{}, fmt.Errorf("invalid LOG_LEVEL value %q: %w", raw, err)
	}

	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", "console"))
	switch format {
	case "console", "json":
	default:
		return LogConfig{}, fmt.Errorf("invalid LOG_FORMAT value %q", format)
	}

	return LogConfig{Level: level, JSON: format == "json"}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
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
