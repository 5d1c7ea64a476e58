package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/ekisa-team/voxlingo/internal/backend"
	"github.com/ekisa-team/voxlingo/internal/backend/elevenlabs"
	"github.com/ekisa-team/voxlingo/internal/backend/tone"
	"github.com/ekisa-team/voxlingo/internal/blob"
	"github.com/ekisa-team/voxlingo/internal/config"
	"github.com/ekisa-team/voxlingo/internal/env"
	"github.com/ekisa-team/voxlingo/internal/logger"
	grpcserver "github.com/ekisa-team/voxlingo/internal/server/grpc"
	httpserver "github.com/ekisa-team/voxlingo/internal/server/http"
	"github.com/ekisa-team/voxlingo/internal/service"
	"github.com/ekisa-team/voxlingo/internal/store/sqlite"
	"github.com/ekisa-team/voxlingo/internal/translate"
	"github.com/ekisa-team/voxlingo/internal/voice"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	var (
		flagHTTPPort   = flag.Int("http-port", config.DefaultHTTPPort(), "HTTP port to listen on")
		flagGRPCPort   = flag.Int("grpc-port", config.DefaultGRPCPort(), "GRPC port to listen on")
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "voxlingo.v1.schema.json"), "Path to schema file")
	)
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		slog.Warn("Failed to load .env", "error", err)
	}

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/voxlingo.log"),
		),
	)

	voices := voice.NewCatalog(nil)

	watcher, err := config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}

		voices.Load(cfg.Voices)
		slog.Info("Voice catalog reloaded")
	})
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		os.Exit(1)
	}
	defer watcher.Close()

	cfg := watcher.Snapshot()
	voices.Load(cfg.Voices)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "http-port":
			cfg.Server.HTTPPort = *flagHTTPPort
		case "grpc-port":
			cfg.Server.GRPCPort = *flagGRPCPort
		}
	})

	slog.Info("Config loaded successfully",
		"config", *flagConfigPath,
		"schema", *flagSchemaPath,
		"env", environment,
	)

	if err := run(cfg, voices); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, voices *voice.Catalog) error {
	db, err := sqlite.Init(cfg.Storage.DatabasePath)
	if err != nil {
		// History degrades to empty results; translation and speech still work.
		slog.Error("History database unavailable", "error", err, "path", cfg.Storage.DatabasePath)
	}
	defer closeDB(db)

	blobs, err := blob.NewFileStore(cfg.Storage.PublicDir, cfg.Storage.PublicURL)
	if err != nil {
		return err
	}

	neural := elevenlabs.New(elevenlabs.Options{
		BaseURL: cfg.ElevenLabs.BaseURL,
		APIKey:  cfg.ElevenLabs.APIKey,
		ModelID: cfg.ElevenLabs.ModelID,
		Timeout: cfg.ElevenLabs.Timeout(),
	})
	if !neural.Configured() {
		slog.Warn("ElevenLabs API key not set, neural speech disabled")
	}

	backends := backend.NewRegistry()
	for _, b := range []backend.Backend{neural, tone.NewBackend()} {
		if err := backends.Register(b); err != nil {
			return err
		}
	}
	defer backends.Close()

	translator := translate.New(translate.Options{
		BaseURL: cfg.Translation.BaseURL,
		Timeout: cfg.Translation.Timeout(),
	})

	translations := sqlite.NewTranslationRepo(db)
	audio := sqlite.NewAudioFileRepo(db)

	services := httpserver.Services{
		Translations: service.NewTranslations(translator, translations),
		Speech: service.NewSpeech(service.NewSynthesizer(backends, blobs), voices, translations, audio, service.SpeechOptions{
			NeuralEnabled: neural.Configured(),
			Fallback:      service.FallbackMode(cfg.Speech.Fallback),
		}),
		History:     service.NewHistory(translations, audio, blobs),
		Voices:      voices,
		VoiceLister: neural,
	}

	mux := http.NewServeMux()
	api := httpserver.NewAPI(mux, version)
	httpserver.Register(api, services)
	httpserver.MountPages(mux, services, cfg.Storage.PublicDir, cfg.Storage.PublicURL)

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout(),
	}

	grpcSrv := grpcserver.NewServer()
	grpcSrv.SetHistoryAvailable(db != nil)

	grpcLis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}

	errCh := make(chan error, 2)

	go func() {
		slog.Info("HTTP server listening", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go func() {
		slog.Info("gRPC server listening", "addr", grpcLis.Addr().String())
		if err := grpcSrv.Serve(grpcLis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err = <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	grpcSrv.Shutdown()
	if serr := httpSrv.Shutdown(shutdownCtx); serr != nil {
		slog.Error("Graceful shutdown failed", "error", serr)
		if cerr := httpSrv.Close(); cerr != nil {
			slog.Error("Forced close failed", "error", cerr)
		}
	}

	return err
}

func closeDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}
