package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/ekisa-team/voxlingo/internal/envvar"
)

const (
	defaultHTTPPort          = 8080
	defaultGRPCPort          = 9090
	defaultReadHeaderTimeout = 10
	defaultDatabaseFile      = "voxlingo.db"
	defaultPublicDir         = "public"
	defaultPublicURL         = "/storage"
	defaultTranslateTimeout  = 10
	defaultElevenLabsTimeout = 30
)

// DefaultConfigPath returns the default path for VOXLINGO config directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "voxlingo", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "voxlingo")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "voxlingo")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "voxlingo")
		}
		return filepath.Join(home, ".config", "voxlingo")
	}
}

// DefaultDataPath returns the default path for VOXLINGO data directory.
func DefaultDataPath() string {
	if p := os.Getenv(envvar.VoxlingoDataPath); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "voxlingo", "data")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "voxlingo")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "voxlingo", "data")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "voxlingo")
		}
		return filepath.Join(home, ".local", "share", "voxlingo")
	}
}

// DefaultHTTPPort returns the HTTP port from VOXLINGO_SERVER_HTTP_PORT, or 8080.
func DefaultHTTPPort() int {
	return portFromEnv(envvar.VoxlingoServerHTTPPort, defaultHTTPPort)
}

// DefaultGRPCPort returns the gRPC port from VOXLINGO_SERVER_GRPC_PORT, or 9090.
func DefaultGRPCPort() int {
	return portFromEnv(envvar.VoxlingoServerGRPCPort, defaultGRPCPort)
}

func portFromEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	port, err := strconv.Atoi(v)
	if err != nil || port <= 0 || port > 65535 {
		return fallback
	}
	return port
}

// applyDefaults fills unset fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = defaultHTTPPort
	}
	if cfg.Server.GRPCPort == 0 {
		cfg.Server.GRPCPort = defaultGRPCPort
	}
	if cfg.Server.ReadHeaderTimeoutSeconds == 0 {
		cfg.Server.ReadHeaderTimeoutSeconds = defaultReadHeaderTimeout
	}

	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = DefaultDataPath()
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = defaultDatabaseFile
	}
	if cfg.Storage.PublicDir == "" {
		cfg.Storage.PublicDir = defaultPublicDir
	}
	if cfg.Storage.PublicURL == "" {
		cfg.Storage.PublicURL = defaultPublicURL
	}

	if cfg.Translation.TimeoutSeconds == 0 {
		cfg.Translation.TimeoutSeconds = defaultTranslateTimeout
	}
	if cfg.ElevenLabs.TimeoutSeconds == 0 {
		cfg.ElevenLabs.TimeoutSeconds = defaultElevenLabsTimeout
	}

	if cfg.Speech.Fallback == "" {
		cfg.Speech.Fallback = SpeechFallbackWebSpeech
	}
}
