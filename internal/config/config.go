package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level corep.yaml configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Report    ReportConfig    `yaml:"report"`
	Audit     AuditConfig     `yaml:"audit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig controls the HTTP API listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RetrievalConfig controls regulatory document search.
type RetrievalConfig struct {
	DocsDir         string `yaml:"docs_dir"`
	TopK            int    `yaml:"top_k"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
}

// CacheTTL returns the retrieval cache lifetime as a duration.
func (c RetrievalConfig) CacheTTL() time.Duration {
	if c.CacheTTLMinutes <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// ReportConfig controls report defaults.
type ReportConfig struct {
	Currency string `yaml:"currency"`
}

// AuditConfig controls the request audit trail.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	DataDir string `yaml:"data_dir"`
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a corep.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new install.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Retrieval: RetrievalConfig{
			DocsDir:         "reg_docs",
			TopK:            3,
			CacheTTLMinutes: 5,
		},
		Report: ReportConfig{
			Currency: "GBP",
		},
		Audit: AuditConfig{
			Enabled: true,
			DataDir: ".",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadOrDefault reads corep.yaml if present, otherwise returns defaults,
// then applies environment overrides in both cases. A .env file is honored
// when one exists.
func LoadOrDefault(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overlays COREP_* environment variables onto a config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("COREP_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("COREP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("COREP_DOCS_DIR"); v != "" {
		cfg.Retrieval.DocsDir = v
	}
	if v := os.Getenv("COREP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("COREP_AUDIT_DIR"); v != "" {
		cfg.Audit.DataDir = v
	}
}
