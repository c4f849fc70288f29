package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, defaultAPIBaseURL)
	}
	if cfg.DefaultTerm != "chicken" {
		t.Fatalf("DefaultTerm = %q, want chicken", cfg.DefaultTerm)
	}
	if cfg.QuietPeriod != 500*time.Millisecond {
		t.Fatalf("QuietPeriod = %v, want 500ms", cfg.QuietPeriod)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.PrepTime != "N/A" || cfg.CookTime != "N/A" || cfg.Servings != "N/A" {
		t.Fatalf("placeholders = %q/%q/%q, want N/A", cfg.PrepTime, cfg.CookTime, cfg.Servings)
	}
	if cfg.MetricsAddr != "" {
		t.Fatalf("MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}

	wantLogDir, err := ExpandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("ExpandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.LogPath() != filepath.Join(wantLogDir, "ladle.log") {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath(), filepath.Join(wantLogDir, "ladle.log"))
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base_url = "  http://127.0.0.1:9000/api  "
default_term = " beef "
quiet_period_ms = 250
request_timeout_seconds = 3
prep_time = "15 min"
servings = "4"
log_level = "DEBUG"
log_format = "json"
log_dir = "  ~/.ladle/logs  "
metrics_addr = "127.0.0.1:9464"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != "http://127.0.0.1:9000/api" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.DefaultTerm != "beef" {
		t.Fatalf("DefaultTerm = %q, want beef", cfg.DefaultTerm)
	}
	if cfg.QuietPeriod != 250*time.Millisecond || cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("durations = %v/%v, want 250ms/3s", cfg.QuietPeriod, cfg.RequestTimeout)
	}
	if cfg.PrepTime != "15 min" || cfg.CookTime != "N/A" || cfg.Servings != "4" {
		t.Fatalf("placeholders = %q/%q/%q", cfg.PrepTime, cfg.CookTime, cfg.Servings)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("log = %q/%q, want debug/json", cfg.LogLevel, cfg.LogFormat)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.MetricsAddr != "127.0.0.1:9464" {
		t.Fatalf("MetricsAddr = %q", cfg.MetricsAddr)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_base_url = "   "
default_term = ""
quiet_period_ms = 0
log_dir = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBaseURL != defaultAPIBaseURL || cfg.DefaultTerm != defaultTerm {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
	if cfg.QuietPeriod != defaultQuietPeriod {
		t.Fatalf("QuietPeriod = %v, want %v", cfg.QuietPeriod, defaultQuietPeriod)
	}
	wantLogDir, err := ExpandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("ExpandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`default_term = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidLogFormatFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_format = "xml"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "log_format") {
		t.Fatalf("Load error = %v, want log_format error", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/ladle.log")) {
		t.Fatalf("LogPath = %q, want it to end with /ladle.log", got)
	}
}
