// Package config loads runtime settings from defaults, an optional YAML file
// and BIDBOOK_* environment variables, in that order.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/bidbook/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Pricing PricingConfig `yaml:"pricing"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// PricingConfig holds the hourly rate used when a command supplies none.
type PricingConfig struct {
	HourlyRate int64 `yaml:"hourly_rate"`
}

// Default returns the built-in settings. The database lives under
// ~/.bidbook unless the home directory cannot be resolved.
func Default() Config {
	dbPath := "bidbook.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".bidbook", "bidbook.db")
	}
	return Config{
		Server:  ServerConfig{Host: "127.0.0.1", Port: 8080},
		DB:      DBConfig{Path: dbPath},
		Log:     LogConfig{Level: "info"},
		Pricing: PricingConfig{HourlyRate: domain.DefaultHourlyRate},
	}
}

func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("BIDBOOK_CONFIG"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("BIDBOOK_DB"); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv("BIDBOOK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BIDBOOK_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("BIDBOOK_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BIDBOOK_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("BIDBOOK_HOURLY_RATE"); v != "" {
		rate, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BIDBOOK_HOURLY_RATE: %w", err)
		}
		cfg.Pricing.HourlyRate = rate
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db path must not be empty")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Pricing.HourlyRate <= 0 {
		return fmt.Errorf("hourly rate must be positive, got %d", c.Pricing.HourlyRate)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// NewLogger builds a text slog logger at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(c.Log.Level),
	}))
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
