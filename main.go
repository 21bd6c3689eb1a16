package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/kdi-analyzer/server/internal/chat"
	"github.com/kdi-analyzer/server/internal/core"
	"github.com/kdi-analyzer/server/internal/httpserver"
	"github.com/kdi-analyzer/server/internal/provider"
	"github.com/kdi-analyzer/server/internal/report"
	"github.com/kdi-analyzer/server/internal/session"
	logx "github.com/kdi-analyzer/server/pkg/logger"
	pkgredis "github.com/kdi-analyzer/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced from
// environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Port        int    `envconfig:"PORT" default:"8080"`

	// Infrastructure. A configured Redis URL switches the transcript store
	// from process memory to Redis.
	Redis         pkgredis.Config
	TranscriptTTL string `envconfig:"TRANSCRIPT_TTL" default:"30m"`

	// LLM provider
	Provider provider.Config

	// Services
	Analysis report.AnalyzerConfig
	Chat     chat.Config
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("Warning: Could not load .env file: %v\n", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Printf("Failed to process environment config: %v\n", err)
		os.Exit(1)
	}

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})

	client, err := provider.New(ctx, cfg.Provider)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise Gemini client")
	}

	var transcripts chat.TranscriptStore = chat.NewMemoryStore()
	if cfg.Redis.Enabled() {
		ttl, err := time.ParseDuration(cfg.TranscriptTTL)
		if err != nil {
			logx.Fatal().Err(err).Str("ttl", cfg.TranscriptTTL).Msg("invalid TRANSCRIPT_TTL")
		}
		rdb, err := cfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise Redis client")
		}
		defer rdb.Close()
		transcripts = chat.NewRedisStore(rdb, ttl)
		logx.Info().Dur("ttl", ttl).Msg("transcripts stored in Redis")
	}

	sessions := session.NewManager()
	analyzer := report.NewAnalyzer(client, cfg.Analysis)
	chatSvc := chat.NewService(client, cfg.Chat, transcripts, sessions)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      httpserver.NewRouter(sessions, analyzer, chatSvc, transcripts),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logx.Info().Str("addr", srv.Addr).Str("env", env.String()).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logx.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("shutdown error")
	}
}
