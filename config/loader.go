package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration
type Config struct {
	LLM    LLMConfig    `yaml:"llm"`
	Server ServerConfig `yaml:"server"`
	Audit  AuditConfig  `yaml:"audit"`
}

// LLMConfig describes the single text-generation deployment
type LLMConfig struct {
	Model             string  `yaml:"model"`
	BaseURL           string  `yaml:"base_url"`
	Timeout           string  `yaml:"timeout"`
	MaxRetries        int     `yaml:"max_retries"`
	Temperature       float64 `yaml:"temperature"`
	MaxTokens         int     `yaml:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// ServerConfig holds the HTTP-facing settings
type ServerConfig struct {
	AllowedOrigin string `yaml:"allowed_origin"`
}

// AuditConfig controls the interaction audit log
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no chat.yaml is present.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:             "gemini-2.0-flash",
			Timeout:           "30s",
			MaxRetries:        3,
			Temperature:       0.7,
			MaxTokens:         500,
			RequestsPerSecond: 2,
		},
		Server: ServerConfig{
			AllowedOrigin: "https://emis-ebon.vercel.app",
		},
		Audit: AuditConfig{
			Enabled: true,
			Path:    "chat_audit.db",
		},
	}
}

// LoadConfig loads chat.yaml from configDir, expanding environment
// variables, and fills anything missing from Default.
func LoadConfig(configDir string) (*Config, error) {
	config := Default()

	path := filepath.Join(configDir, "chat.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse chat.yaml: %w", err)
	}

	expandEnvVars(config)
	return config, nil
}

// ParseTimeout returns the LLM timeout as a duration, defaulting to 30s.
func (c *Config) ParseTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.LLM.Timeout)
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return timeout
}

// expandEnvVars expands environment variables in configuration
func expandEnvVars(config *Config) {
	config.LLM.Model = expandEnv(config.LLM.Model)
	config.LLM.BaseURL = expandEnv(config.LLM.BaseURL)
	config.Server.AllowedOrigin = expandEnv(config.Server.AllowedOrigin)
	config.Audit.Path = expandEnv(config.Audit.Path)
}

// expandEnv expands environment variables in a string
func expandEnv(s string) string {
	if strings.Contains(s, "${") {
		return os.Expand(s, func(key string) string {
			// Handle default values like ${VAR:-default}
			parts := strings.SplitN(key, ":-", 2)
			value := os.Getenv(parts[0])
			if value == "" && len(parts) > 1 {
				return parts[1]
			}
			return value
		})
	}
	return s
}
