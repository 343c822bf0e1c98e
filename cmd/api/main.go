package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/talklens/backend/internal/config"
	"github.com/zhouzirui/talklens/backend/internal/handler"
	"github.com/zhouzirui/talklens/backend/internal/model/relationship"
	"github.com/zhouzirui/talklens/backend/internal/service/analysis"
	"github.com/zhouzirui/talklens/backend/internal/service/counter"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := bootLogger(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := cfg.Log.Logger(os.Stdout)
	log := logger.With().Str("component", "api").Logger()
	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file, continuing with system environment variables only")
	}

	counterStore, closeCounter := newCounter(ctx, cfg.Counter, logger)
	defer closeCounter()

	types := relationship.NewMemoryStore(relationship.Catalog())
	analysisService := analysis.NewService(analysis.Options{
		Thresholds: cfg.Analysis.Thresholds,
		Location:   cfg.Analysis.Location,
		Types:      types,
		Counter:    counterStore,
	}, logger)

	th := analysisService.Thresholds()
	log.Info().
		Float64("biasRate", th.BiasRate).
		Float64("highSpeedRate", th.HighSpeedRate).
		Int("minMessages", th.MinMessages).
		Int64("maxUploadBytes", cfg.Analysis.MaxUploadBytes).
		Msg("analysis pipeline initialized")

	router := handler.NewRouter(cfg, analysisService, types, counterStore, logger)

	startServer(ctx, cfg.Server, router, log)
}

// bootLogger 用于配置加载之前，日志级别与格式尚未确定
func bootLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("component", "api").Logger()
}

// newCounter 优先使用 Redis，连接失败时退回内存计数
func newCounter(ctx context.Context, cfg config.CounterConfig, logger zerolog.Logger) (counter.Counter, func()) {
	log := logger.With().Str("component", "api").Logger()
	if !cfg.Enabled() {
		log.Info().Msg("REDIS_URL 未配置，使用内存计数器")
		return counter.NewMemoryStore(), func() {}
	}

	store, err := counter.NewRedisStore(ctx, cfg.RedisConfig(), logger)
	if err != nil {
		log.Warn().Err(err).Msg("redis counter unavailable, falling back to in-memory counter")
		return counter.NewMemoryStore(), func() {}
	}

	log.Info().Str("prefix", cfg.KeyPrefix).Msg("redis counter initialized")
	return store, func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("close redis counter")
		}
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, log zerolog.Logger) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("TalkLens backend listening")
	if err := runServer(ctx, srv, serverCfg.ShutdownTimeout); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}

func runServer(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
