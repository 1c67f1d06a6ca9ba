package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppInfo holds basic information about the application.
type AppInfo struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// LoggerConfig holds the logger settings.
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// StreamConfig holds the pacing delays for the event stream simulator, as
// duration strings (e.g. "200ms"). Tests shrink these to keep runs fast.
type StreamConfig struct {
	ConsolePacing    string `yaml:"consolePacing"`
	ExplanationDelay string `yaml:"explanationDelay"`
	AiResponseDelay  string `yaml:"aiResponseDelay"`
}

// Stream pacing defaults, matching the reference scenarios.
const (
	DefaultConsolePacing    = 200 * time.Millisecond
	DefaultExplanationDelay = 500 * time.Millisecond
	DefaultAiResponseDelay  = 1000 * time.Millisecond
)

// ConsolePacingDuration returns the parsed console pacing delay, falling
// back to the default on an empty or malformed value.
func (c StreamConfig) ConsolePacingDuration() time.Duration {
	return parseDuration(c.ConsolePacing, DefaultConsolePacing)
}

// ExplanationDelayDuration returns the parsed error explanation delay.
func (c StreamConfig) ExplanationDelayDuration() time.Duration {
	return parseDuration(c.ExplanationDelay, DefaultExplanationDelay)
}

// AiResponseDelayDuration returns the parsed AI reply delay.
func (c StreamConfig) AiResponseDelayDuration() time.Duration {
	return parseDuration(c.AiResponseDelay, DefaultAiResponseDelay)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// AppConfig is the root of the YAML configuration file.
type AppConfig struct {
	App    AppInfo      `yaml:"app"`
	Server ServerConfig `yaml:"server"`
	Logger LoggerConfig `yaml:"logger"`
	Stream StreamConfig `yaml:"stream"`
}

// LoadConfig reads and parses the YAML configuration at path. Environment
// variables WORKSPACE_SERVER_ADDRESS and WORKSPACE_LOG_LEVEL override the
// file values when set.
func LoadConfig(path string) (*AppConfig, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if addr := os.Getenv("WORKSPACE_SERVER_ADDRESS"); addr != "" {
		cfg.Server.Address = addr
	}
	if level := os.Getenv("WORKSPACE_LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":5000"
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}

	return &cfg, nil
}
