package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix              = "SUCCEED_WEB_"
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultPublicDir       = "public"
	defaultLogLevel        = "info"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	Log    LogConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Address returns the listen address. An explicit Addr wins over Port.
func (s ServerConfig) Address() string {
	if s.Addr != "" {
		return s.Addr
	}
	return ":" + s.Port
}

// SiteConfig points at the site definition and its files.
type SiteConfig struct {
	// ConfigPath is a YAML site definition; empty uses the embedded default.
	ConfigPath string
	// ContentDir holds markdown pages; empty uses the embedded pages.
	ContentDir string
	PublicDir  string
	BaseURL    string
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level       string
	Development bool
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile reads additional values from a dotenv file. An empty path
// disables the file; a missing file is ignored.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap supplies explicit values that take precedence over everything else.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv ignores the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves configuration. Precedence, lowest first: defaults, the dotenv
// file, the process environment, WithEnvMap values.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:            stringWithDefault(lookup, envPrefix+"ADDR", ""),
			Port:            stringWithDefault(lookup, envPrefix+"PORT", stringWithDefault(lookup, "PORT", defaultPort)),
			ReadTimeout:     durationWithDefault(lookup, envPrefix+"READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    durationWithDefault(lookup, envPrefix+"WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     durationWithDefault(lookup, envPrefix+"IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: durationWithDefault(lookup, envPrefix+"SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Site: SiteConfig{
			ConfigPath: stringWithDefault(lookup, envPrefix+"SITE_CONFIG", ""),
			ContentDir: stringWithDefault(lookup, envPrefix+"CONTENT_DIR", ""),
			PublicDir:  stringWithDefault(lookup, envPrefix+"PUBLIC_DIR", defaultPublicDir),
			BaseURL:    strings.TrimRight(stringWithDefault(lookup, envPrefix+"BASE_URL", ""), "/"),
		},
		Log: LogConfig{
			Level:       strings.ToLower(stringWithDefault(lookup, envPrefix+"LOG_LEVEL", defaultLogLevel)),
			Development: boolWithDefault(lookup, envPrefix+"DEV", false),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var invalid []string

	if cfg.Server.Addr == "" {
		if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port < 1 || port > 65535 {
			invalid = append(invalid, "Server.Port")
		}
	}
	if cfg.Server.ReadTimeout <= 0 {
		invalid = append(invalid, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		invalid = append(invalid, "Server.WriteTimeout")
	}
	if cfg.Server.IdleTimeout <= 0 {
		invalid = append(invalid, "Server.IdleTimeout")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		invalid = append(invalid, "Server.ShutdownTimeout")
	}
	if p := cfg.Site.ConfigPath; p != "" {
		if ext := strings.ToLower(filepath.Ext(p)); ext != ".yaml" && ext != ".yml" {
			invalid = append(invalid, "Site.ConfigPath")
		}
	}
	if cfg.Site.BaseURL != "" {
		u, err := url.Parse(cfg.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			invalid = append(invalid, "Site.BaseURL")
		}
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		invalid = append(invalid, "Log.Level")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	values, err := godotenv.Read(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// durationWithDefault accepts Go durations ("30s") or whole seconds ("30").
func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	value, ok := lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	// unparsable values fail validation instead of silently using the default
	return -1
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
