package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the YAML config file location
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Dataset DatasetConfig `koanf:"dataset"`
	Charts  ChartsConfig  `koanf:"charts"`
	Logging LoggingConfig `koanf:"logging"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Debug           bool          `koanf:"debug"`
}

type DatasetConfig struct {
	Path string `koanf:"path"` // local file or http(s) URL
}

type ChartsConfig struct {
	StaticDir string `koanf:"static_dir"` // served under /static/
	Dir       string `koanf:"dir"`        // where PNGs are written
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Debug:           true,
		},
		Dataset: DatasetConfig{Path: "dataset.csv"},
		Charts: ChartsConfig{
			StaticDir: "static",
			Dir:       "static/graphs",
			Width:     800,
			Height:    500,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// envKeys maps supported environment variables to koanf keys
var envKeys = map[string]string{
	"DASHBOARD_ADDR":             "server.addr",
	"DASHBOARD_READ_TIMEOUT":     "server.read_timeout",
	"DASHBOARD_WRITE_TIMEOUT":    "server.write_timeout",
	"DASHBOARD_SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
	"DASHBOARD_DEBUG":            "server.debug",
	"DASHBOARD_DATASET_PATH":     "dataset.path",
	"DASHBOARD_STATIC_DIR":       "charts.static_dir",
	"DASHBOARD_GRAPH_DIR":        "charts.dir",
	"DASHBOARD_CHART_WIDTH":      "charts.width",
	"DASHBOARD_CHART_HEIGHT":     "charts.height",
	"LOG_LEVEL":                  "logging.level",
	"LOG_FORMAT":                 "logging.format",
}

func envTransform(key string) string {
	return envKeys[key]
}

// Load layers defaults, an optional YAML file and the environment.
// A .env file in the working directory is read into the environment first.
func Load() (*Config, error) {
	// missing .env is normal; real env vars still apply
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if strings.TrimSpace(c.Dataset.Path) == "" {
		errs = append(errs, errors.New("dataset.path is required"))
	}
	if strings.TrimSpace(c.Charts.Dir) == "" {
		errs = append(errs, errors.New("charts.dir is required"))
	}
	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart size must be positive, got %dx%d", c.Charts.Width, c.Charts.Height))
	}
	return errors.Join(errs...)
}
