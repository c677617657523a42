package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	koanftoml "github.com/knadh/koanf/parsers/toml/v2"
	koanfenv "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
)

// Config represents the application configuration structure
type Config struct {
	Runtime RuntimeConfig `koanf:"runtime"`
	Logging LoggingConfig `koanf:"logging"`
	Demo    DemoConfig    `koanf:"demo"`
}

// RuntimeConfig holds event loop and terminal settings
type RuntimeConfig struct {
	Engine       string        `koanf:"engine"`
	PollInterval time.Duration `koanf:"poll_interval"`
	TickInterval time.Duration `koanf:"tick_interval"`
	AltScreen    bool          `koanf:"alt_screen"`
	Mouse        bool          `koanf:"mouse"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `koanf:"level"`
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"max_size"`    // megabytes
	MaxBackups int    `koanf:"max_backups"` // files
	MaxAge     int    `koanf:"max_age"`     // days
	Compress   bool   `koanf:"compress"`
}

// DemoConfig holds settings for the bundled demo applications
type DemoConfig struct {
	Name         string        `koanf:"name"`
	TickInterval time.Duration `koanf:"tick_interval"`
	Items        []string      `koanf:"items"`
	ToastTimeout time.Duration `koanf:"toast_timeout"`
}

// defaultConfig returns the configuration populated with sensible defaults.
func defaultConfig() Config {
	return Config{
		Runtime: RuntimeConfig{
			Engine:       "native",
			PollInterval: 16 * time.Millisecond,
			TickInterval: 100 * time.Millisecond,
			AltScreen:    true,
			Mouse:        true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		},
		Demo: DemoConfig{
			Name:         "checklist",
			TickInterval: 100 * time.Millisecond,
			Items:        []string{"Buy carrots", "Buy celery", "Buy kohlrabi"},
			ToastTimeout: 2 * time.Second,
		},
	}
}

// LoadConfig loads configuration from the user config, the project config,
// an optional extra file and COVE_ environment variables, in that order.
func LoadConfig(extraPath string) (*Config, error) {
	var paths []string
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Failed to get user home directory: %v", err)
	} else {
		paths = append(paths, filepath.Join(homeDir, ".config", "cove", "conf.toml"))
	}
	paths = append(paths, filepath.Join(".cove", "conf.toml"))
	if extraPath != "" {
		paths = append(paths, extraPath)
	}
	return loadConfigFrom(paths...)
}

func loadConfigFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if !os.IsNotExist(err) {
				log.Printf("Unable to stat config at %s: %v", path, err)
			}
			continue
		}
		if err := k.Load(file.Provider(path), koanftoml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// Environment variables with prefix "COVE_" override config values,
	// e.g. COVE_RUNTIME_TICK_INTERVAL=250ms sets runtime.tick_interval
	if err := k.Load(koanfenv.Provider(".", koanfenv.Opt{
		Prefix: "COVE_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "COVE_"))
			return strings.Replace(key, "_", ".", 1), value
		},
	}), nil); err != nil {
		log.Printf("Failed to load environment variables: %v", err)
	}

	config := defaultConfig()
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Runtime.Engine {
	case "native", "bubbletea":
	default:
		return fmt.Errorf("unsupported runtime engine: %s", c.Runtime.Engine)
	}
	if c.Runtime.PollInterval <= 0 {
		return fmt.Errorf("runtime.poll_interval must be positive, got %s", c.Runtime.PollInterval)
	}
	if c.Runtime.TickInterval <= 0 {
		return fmt.Errorf("runtime.tick_interval must be positive, got %s", c.Runtime.TickInterval)
	}
	if c.Demo.TickInterval <= 0 {
		return fmt.Errorf("demo.tick_interval must be positive, got %s", c.Demo.TickInterval)
	}
	return nil
}

// logFilePath returns the configured log file or the default under
// ~/.local/share/cove.
func (c LoggingConfig) logFilePath() (string, error) {
	if c.File != "" {
		return c.File, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "cove", "cove.log"), nil
}
