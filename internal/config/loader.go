package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v3"

	"github.com/ekisa-team/voxlingo/internal/envvar"
	"github.com/ekisa-team/voxlingo/internal/xfs"
)

// memoryDatabase is the SQLite in-memory path; it is never resolved
// against the data directory.
const memoryDatabase = ":memory:"

// LoadDotEnv loads variables from the given .env files (".env" when none
// are given). Missing files are ignored and set variables are never
// overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: failed to load %s: %w", p, err)
		}
	}
	return nil
}

// LoadAndValidate loads and validates the configuration. Environment
// variables override file values; defaults fill the rest.
func LoadAndValidate(path, schemaPath string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read config: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}

	schema, err := jsonschema.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("config: failed to compile schema: %w", err)
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("config: config validation failed: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal into Config struct: %w", err)
	}

	if err := applyEnv(&config); err != nil {
		return nil, err
	}
	applyDefaults(&config)
	resolvePaths(&config)

	return &config, nil
}

// applyEnv overrides config values with set environment variables.
func applyEnv(cfg *Config) error {
	ports := []struct {
		key  string
		dest *int
	}{
		{key: envvar.VoxlingoServerHTTPPort, dest: &cfg.Server.HTTPPort},
		{key: envvar.VoxlingoServerGRPCPort, dest: &cfg.Server.GRPCPort},
	}
	for _, p := range ports {
		v, ok := os.LookupEnv(p.key)
		if !ok || v == "" {
			continue
		}
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("config: invalid %s %q", p.key, v)
		}
		*p.dest = port
	}

	if v := os.Getenv(envvar.VoxlingoDataPath); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv(envvar.ElevenLabsAPIKey)); v != "" {
		cfg.ElevenLabs.APIKey = v
	}
	return nil
}

func resolvePaths(cfg *Config) {
	s := &cfg.Storage
	s.DataDir = xfs.ExpandTilde(s.DataDir)
	if s.DatabasePath != memoryDatabase {
		s.DatabasePath = xfs.ResolvePath(s.DataDir, s.DatabasePath)
	}
	s.PublicDir = xfs.ResolvePath(s.DataDir, s.PublicDir)
}
