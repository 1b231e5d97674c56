// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// isolate runs the test from an empty directory with no CONFIG_PATH so that
// a developer's config.yaml cannot leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if cfg.Catalog.Format != "auto" {
		t.Errorf("Catalog.Format = %q, want auto", cfg.Catalog.Format)
	}
	if cfg.Recommend.DefaultK != 15 {
		t.Errorf("Recommend.DefaultK = %d, want 15", cfg.Recommend.DefaultK)
	}
	if cfg.Recommend.DiversityLambda != 0 {
		t.Errorf("diversity should be off by default, got %v", cfg.Recommend.DiversityLambda)
	}
	if cfg.Metadata.Active() {
		t.Error("metadata should be inactive without a token")
	}
	if cfg.Metadata.ImageBaseURL != "https://image.tmdb.org/t/p/w500" {
		t.Errorf("Metadata.ImageBaseURL = %q", cfg.Metadata.ImageBaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"CATALOG_PATH", "catalog.path"},
		{"MODEL_PATH", "catalog.model_path"},
		{"TMDB_TOKEN", "metadata.token"},
		{"TMDB_CACHE_DIR", "metadata.cache_dir"},
		{"RECOMMEND_DIVERSITY", "recommend.diversity_lambda"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolate(t)

	if got := findConfigFile(); got != "" {
		t.Errorf("expected no config file, got %q", got)
	}

	writeConfig(t, dir, "server:\n  port: 9000\n")
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("findConfigFile() = %q, want config.yaml", got)
	}

	custom := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(custom, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, custom)
	if got := findConfigFile(); got != custom {
		t.Errorf("CONFIG_PATH should win, got %q", got)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Metadata.CacheTTL != 24*time.Hour {
		t.Errorf("CacheTTL = %v", cfg.Metadata.CacheTTL)
	}
}

func TestLoadWithKoanf_EnvVars(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("CATALOG_PATH", "/data/movies.db")
	t.Setenv("CATALOG_FORMAT", "sqlite")
	t.Setenv("TMDB_TOKEN", "secret")
	t.Setenv("TMDB_TIMEOUT", "2s")
	t.Setenv("RECOMMEND_DIVERSITY", "0.3")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.Catalog.Path != "/data/movies.db" || cfg.Catalog.Format != "sqlite" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if !cfg.Metadata.Active() || cfg.Metadata.Timeout != 2*time.Second {
		t.Errorf("Metadata = %+v", cfg.Metadata)
	}
	if cfg.Recommend.DiversityLambda != 0.3 {
		t.Errorf("DiversityLambda = %v", cfg.Recommend.DiversityLambda)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
server:
  port: 7000
catalog:
  path: /srv/movies.duckdb
  format: duckdb
recommend:
  default_k: 10
  max_k: 50
security:
  cors_origins:
    - https://movies.example
logging:
  format: console
`)

	cfg, err := LoadWithKoanf(path)
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Server.Port != 7000 || cfg.Catalog.Format != "duckdb" {
		t.Errorf("file values not applied: %+v %+v", cfg.Server, cfg.Catalog)
	}
	if cfg.Recommend.DefaultK != 10 || cfg.Recommend.MaxK != 50 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://movies.example"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	// Untouched sections keep their defaults
	if cfg.Metadata.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("Metadata.BaseURL = %q", cfg.Metadata.BaseURL)
	}
}

func TestLoadWithKoanf_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "server:\n  port: 7000\nlogging:\n  level: warn\n")
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("env should override file, port = %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("file value lost, level = %q", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_MissingExplicitFile(t *testing.T) {
	isolate(t)

	if _, err := LoadWithKoanf("/non/existent/config.yaml"); err == nil {
		t.Error("expected error for a missing explicit config file")
	}
}

func TestLoadWithKoanf_InvalidValue(t *testing.T) {
	isolate(t)
	t.Setenv("RECOMMEND_DEFAULT_K", "0")

	if _, err := Load(); err == nil {
		t.Error("expected validation error")
	}
}
