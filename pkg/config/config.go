package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`
	Storage struct {
		Backend string `yaml:"backend"` // mongo or memory
	} `yaml:"storage"`
	Mongo struct {
		URI            string        `yaml:"uri"`
		Database       string        `yaml:"database"`
		ConnectTimeout time.Duration `yaml:"connect_timeout"`
	} `yaml:"mongo"`
	CoinGecko struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"coingecko"`
	CryptoCompare struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"cryptocompare"`
	AI struct {
		Provider string        `yaml:"provider"` // openai or claude
		Model    string        `yaml:"model"`
		APIKey   string        `yaml:"api_key"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"ai"`
}

func parse(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &c, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	c, err := parse(path)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML and applies environment overrides
// before validating, so secrets and connection strings can come from the
// environment alone.
func LoadWithEnv(path string) (*Config, error) {
	c, err := parse(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("MONGO_URL"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORS.AllowOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("AI_API_KEY"); v != "" {
		c.AI.APIKey = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Storage.Backend == "" {
		return fmt.Errorf("storage.backend is required")
	}
	if c.Storage.Backend != "mongo" && c.Storage.Backend != "memory" {
		return fmt.Errorf("storage.backend must be 'mongo' or 'memory', got '%s'", c.Storage.Backend)
	}
	if c.Storage.Backend == "mongo" && c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required when storage.backend is 'mongo'")
	}
	if c.AI.Provider != "openai" && c.AI.Provider != "claude" {
		return fmt.Errorf("ai.provider must be 'openai' or 'claude', got '%s'", c.AI.Provider)
	}
	return nil
}

// Defaults fills unset optional fields with sensible values.
func (c *Config) Defaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.CoinGecko.BaseURL == "" {
		c.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if c.CoinGecko.Timeout == 0 {
		c.CoinGecko.Timeout = 10 * time.Second
	}
	if c.CryptoCompare.BaseURL == "" {
		c.CryptoCompare.BaseURL = "https://min-api.cryptocompare.com"
	}
	if c.CryptoCompare.Timeout == 0 {
		c.CryptoCompare.Timeout = 10 * time.Second
	}
	if c.Mongo.ConnectTimeout == 0 {
		c.Mongo.ConnectTimeout = 10 * time.Second
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = 30 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
}
