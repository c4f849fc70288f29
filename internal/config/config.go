package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds ladle's runtime settings.
type Config struct {
	APIBaseURL     string
	DefaultTerm    string
	QuietPeriod    time.Duration
	RequestTimeout time.Duration

	PrepTime string
	CookTime string
	Servings string

	LogLevel  string
	LogFormat string
	LogDir    string

	MetricsAddr string
}

const (
	defaultConfigPath     = "~/.config/ladle/config.toml"
	defaultLogDir         = "~/.local/share/ladle/logs"
	defaultAPIBaseURL     = "https://www.themealdb.com/api/json/v1/1"
	defaultTerm           = "chicken"
	defaultQuietPeriod    = 500 * time.Millisecond
	defaultRequestTimeout = 10 * time.Second
	defaultPlaceholder    = "N/A"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	logFileName           = "ladle.log"
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:     defaultAPIBaseURL,
		DefaultTerm:    defaultTerm,
		QuietPeriod:    defaultQuietPeriod,
		RequestTimeout: defaultRequestTimeout,
		PrepTime:       defaultPlaceholder,
		CookTime:       defaultPlaceholder,
		Servings:       defaultPlaceholder,
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		LogDir:         mustExpand(defaultLogDir),
	}
}

type fileConfig struct {
	APIBaseURL            string `toml:"api_base_url"`
	DefaultTerm           string `toml:"default_term"`
	QuietPeriodMS         int    `toml:"quiet_period_ms"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	PrepTime              string `toml:"prep_time"`
	CookTime              string `toml:"cook_time"`
	Servings              string `toml:"servings"`
	LogLevel              string `toml:"log_level"`
	LogFormat             string `toml:"log_format"`
	LogDir                string `toml:"log_dir"`
	MetricsAddr           string `toml:"metrics_addr"`
}

// Load reads the ladle config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBaseURL = orDefault(raw.APIBaseURL, defaultAPIBaseURL)
	cfg.DefaultTerm = orDefault(raw.DefaultTerm, defaultTerm)
	if raw.QuietPeriodMS > 0 {
		cfg.QuietPeriod = time.Duration(raw.QuietPeriodMS) * time.Millisecond
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	cfg.PrepTime = orDefault(raw.PrepTime, defaultPlaceholder)
	cfg.CookTime = orDefault(raw.CookTime, defaultPlaceholder)
	cfg.Servings = orDefault(raw.Servings, defaultPlaceholder)
	cfg.LogLevel = strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel))
	cfg.LogFormat = strings.ToLower(orDefault(raw.LogFormat, defaultLogFormat))
	cfg.LogDir = mustExpand(orDefault(raw.LogDir, defaultLogDir))
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config log_format: unsupported value %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config log_level: unsupported value %q", c.LogLevel)
	}
	return nil
}

// LogPath returns the path to the diagnostics log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
