// Package config assembles the run configuration from the config file, the
// environment and the command line flags bound by cmd.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/trsltx/internal/logging"
	"github.com/valpere/trsltx/internal/oracle"
)

const (
	EnvPrefix = "TRSLTX"
	FileName  = "trsltx"
)

// GlossaryEntry pins the translation of one term.
type GlossaryEntry struct {
	Source string `mapstructure:"source" json:"source"`
	Target string `mapstructure:"target" json:"target"`
}

type Config struct {
	Oracle       string          `mapstructure:"oracle" json:"oracle"`
	APIKey       string          `mapstructure:"api_key" json:"-"`
	Model        string          `mapstructure:"model" json:"model"`
	BaseURL      string          `mapstructure:"base_url" json:"base_url"`
	Temperature  float64         `mapstructure:"temperature" json:"temperature"`
	MaxTokens    int             `mapstructure:"max_tokens" json:"max_tokens"`
	Timeout      time.Duration   `mapstructure:"timeout" json:"timeout"`
	PromptFile   string          `mapstructure:"prompt_file" json:"prompt_file"`
	MaxChunk     int             `mapstructure:"max_chunk" json:"max_chunk"`
	ContextWords int             `mapstructure:"context_words" json:"context_words"`
	Glossary     []GlossaryEntry `mapstructure:"glossary" json:"glossary"`
	LogLevel     string          `mapstructure:"log_level" json:"log_level"`
}

// SetDefaults registers every key so that environment variables are seen by
// Unmarshal even when no config file sets them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("oracle", "textsynth")
	v.SetDefault("api_key", "")
	v.SetDefault("model", "")
	v.SetDefault("base_url", "")
	v.SetDefault("temperature", 0.5)
	v.SetDefault("max_tokens", 2000)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("prompt_file", "")
	v.SetDefault("max_chunk", 2000)
	v.SetDefault("context_words", 0)
	v.SetDefault("log_level", "info")
}

// Load reads the config file at path, or trsltx.yaml from the working
// directory or $HOME/.config/trsltx when path is empty, overlays the
// TRSLTX_* environment and returns the validated result. A missing default
// config file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", EnvPrefix+"_API_KEY", "TEXTSYNTH_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and names; credentials are checked by the oracle
// constructors.
func (c *Config) Validate() error {
	switch c.Oracle {
	case "textsynth", "ollama", "openrouter":
	default:
		return fmt.Errorf("config: unknown oracle %q (want textsynth, ollama or openrouter)", c.Oracle)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config: temperature %v out of range [0, 2]", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("config: max_tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: negative timeout %v", c.Timeout)
	}
	if c.MaxChunk < 0 {
		return fmt.Errorf("config: max_chunk must not be negative, got %d", c.MaxChunk)
	}
	if c.ContextWords < 0 {
		return fmt.Errorf("config: context_words must not be negative, got %d", c.ContextWords)
	}
	for i, g := range c.Glossary {
		if strings.TrimSpace(g.Source) == "" || strings.TrimSpace(g.Target) == "" {
			return fmt.Errorf("config: glossary entry %d needs both source and target", i)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// OracleConfig returns the settings handed to the oracle client.
func (c *Config) OracleConfig() oracle.Config {
	return oracle.Config{
		APIKey:  c.APIKey,
		Model:   c.Model,
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
	}
}

// GlossaryMap returns the glossary keyed by source term.
func (c *Config) GlossaryMap() map[string]string {
	if len(c.Glossary) == 0 {
		return nil
	}
	m := make(map[string]string, len(c.Glossary))
	for _, g := range c.Glossary {
		m[g.Source] = g.Target
	}
	return m
}
