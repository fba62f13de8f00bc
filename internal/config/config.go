package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rpggio/pairwork/internal/render"
	"gopkg.in/yaml.v3"
)

// Transport modes for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config defines application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Auth      AuthConfig      `yaml:"auth"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// AuthConfig enables bearer token checks in HTTP mode when Token is set.
type AuthConfig struct {
	Token string `yaml:"token"`
}

// InputConfig describes where assignment rows come from.
type InputConfig struct {
	File      string `yaml:"file"`
	Separator string `yaml:"separator"`
	DBPath    string `yaml:"db_path"`
	Table     string `yaml:"table"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: TransportStdio,
		},
		Input: InputConfig{
			Separator: ",",
			Table:     "assignments",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
// path takes precedence over PAIRWORK_CONFIG_PATH.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PAIRWORK_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("%w: transport mode %q", ErrInvalidConfig, c.Transport.Mode)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d", ErrInvalidConfig, c.Server.Port)
	}
	if err := render.ValidateFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output %w", ErrInvalidConfig, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("PAIRWORK_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PAIRWORK_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid PAIRWORK_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("PAIRWORK_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if token := os.Getenv("PAIRWORK_AUTH_TOKEN"); token != "" {
		cfg.Auth.Token = token
	}
	if file := os.Getenv("PAIRWORK_INPUT_FILE"); file != "" {
		cfg.Input.File = file
	}
	if sep := os.Getenv("PAIRWORK_INPUT_SEPARATOR"); sep != "" {
		cfg.Input.Separator = sep
	}
	if dbPath := os.Getenv("PAIRWORK_DB_PATH"); dbPath != "" {
		cfg.Input.DBPath = dbPath
	}
	if table := os.Getenv("PAIRWORK_DB_TABLE"); table != "" {
		cfg.Input.Table = table
	}
	if format := os.Getenv("PAIRWORK_OUTPUT_FORMAT"); format != "" {
		cfg.Output.Format = format
	}
	if level := os.Getenv("PAIRWORK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("PAIRWORK_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	return nil
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
