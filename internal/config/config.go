// Package config loads service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all service configuration.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Planner struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"planner"`
	Market struct {
		RefreshCron string `yaml:"refresh_cron"`
		Proxy       string `yaml:"proxy"`
	} `yaml:"market"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
}

// Load reads config from a YAML file (missing file is fine, defaults apply),
// then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FINWISE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse FINWISE_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("FINWISE_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("PLANNER_BASE_URL"); v != "" {
		cfg.Planner.BaseURL = v
	}
	if v := os.Getenv("PLANNER_API_KEY"); v != "" {
		cfg.Planner.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Market.Proxy = v
	}
	if v := os.Getenv("FINWISE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Database.Path == "" {
		c.Database.Path = "finwise.db"
	}
	if c.Planner.TimeoutSeconds == 0 {
		c.Planner.TimeoutSeconds = 45
	}
	if c.Market.RefreshCron == "" {
		// Every 15 minutes.
		c.Market.RefreshCron = "0 */15 * * * *"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
