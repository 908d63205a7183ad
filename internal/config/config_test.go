package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Address() != ":8080" {
		t.Errorf("unexpected address: %s", cfg.Server.Address())
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("unexpected shutdown timeout: %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Site.ConfigPath != "" || cfg.Site.ContentDir != "" {
		t.Errorf("expected embedded site and content, got %+v", cfg.Site)
	}
	if cfg.Site.PublicDir != "public" {
		t.Errorf("unexpected public dir: %s", cfg.Site.PublicDir)
	}
	if cfg.Log.Level != "info" || cfg.Log.Development {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"SUCCEED_WEB_ADDR":             "127.0.0.1:9000",
		"SUCCEED_WEB_READ_TIMEOUT":     "20s",
		"SUCCEED_WEB_WRITE_TIMEOUT":    "25",
		"SUCCEED_WEB_IDLE_TIMEOUT":     "2m",
		"SUCCEED_WEB_SHUTDOWN_TIMEOUT": "3s",
		"SUCCEED_WEB_SITE_CONFIG":      "deploy/site.yml",
		"SUCCEED_WEB_CONTENT_DIR":      "deploy/pages",
		"SUCCEED_WEB_PUBLIC_DIR":       "/srv/public",
		"SUCCEED_WEB_BASE_URL":         "https://succeed.ai/",
		"SUCCEED_WEB_LOG_LEVEL":        "DEBUG",
		"SUCCEED_WEB_DEV":              "yes",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address() != "127.0.0.1:9000" {
		t.Errorf("unexpected address: %s", cfg.Server.Address())
	}
	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 25*time.Second {
		t.Errorf("expected bare seconds to parse, got %s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.IdleTimeout != 2*time.Minute {
		t.Errorf("unexpected idle timeout: %s", cfg.Server.IdleTimeout)
	}
	if cfg.Site.ConfigPath != "deploy/site.yml" || cfg.Site.ContentDir != "deploy/pages" || cfg.Site.PublicDir != "/srv/public" {
		t.Errorf("unexpected site config: %+v", cfg.Site)
	}
	if cfg.Site.BaseURL != "https://succeed.ai" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.BaseURL)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Development {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadPortFallback(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "3000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("expected PORT fallback, got %s", cfg.Server.Port)
	}

	cfg, err = Load(WithEnvMap(map[string]string{"PORT": "3000", "SUCCEED_WEB_PORT": "4000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "4000" {
		t.Errorf("expected prefixed port to win, got %s", cfg.Server.Port)
	}
}

func TestLoadValidationError(t *testing.T) {
	env := map[string]string{
		"SUCCEED_WEB_PORT":         "http",
		"SUCCEED_WEB_READ_TIMEOUT": "soon",
		"SUCCEED_WEB_SITE_CONFIG":  "site.json",
		"SUCCEED_WEB_BASE_URL":     "succeed.ai",
		"SUCCEED_WEB_LOG_LEVEL":    "chatty",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := []string{"Server.Port", "Server.ReadTimeout", "Site.ConfigPath", "Site.BaseURL", "Log.Level"}
	got := vErr.Fields()
	if len(got) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# local overrides\nSUCCEED_WEB_PORT=9191\nexport SUCCEED_WEB_BASE_URL=\"http://localhost:9191\"\nSUCCEED_WEB_LOG_LEVEL=warn\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(
		WithEnvFile(envPath),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{"SUCCEED_WEB_LOG_LEVEL": "error"}),
	)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9191" {
		t.Errorf("expected port from env file, got %s", cfg.Server.Port)
	}
	if cfg.Site.BaseURL != "http://localhost:9191" {
		t.Errorf("expected base url from env file, got %s", cfg.Site.BaseURL)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("expected env map to override env file, got %s", cfg.Log.Level)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")), WithoutSystemEnv())
	if err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}
