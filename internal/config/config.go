// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the agent configuration, loaded from a YAML file plus
// environment variables. All fields are optional; commands that need a
// missing credential fail with a specific error instead.
type Config struct {
	Search   SearchConfig   `mapstructure:"search"`
	Research ResearchConfig `mapstructure:"research"`
	Tracker  TrackerConfig  `mapstructure:"tracker"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Kits     KitConfig      `mapstructure:"kits"`

	ProfilePath string `mapstructure:"profile-path"`
	DatabaseURL string `mapstructure:"database-url"`
}

// SearchConfig controls job discovery.
type SearchConfig struct {
	Queries         []string `mapstructure:"queries"`
	TargetCompanies []string `mapstructure:"target-companies"`
	UseBrowser      bool     `mapstructure:"use-browser"`
}

// ResearchConfig holds the company intelligence credentials.
type ResearchConfig struct {
	NewsAPIKey   string `mapstructure:"newsapi-key"`
	GeminiAPIKey string `mapstructure:"gemini-key"`
}

// TrackerConfig points at the Google Sheets tracker and Drive folder.
type TrackerConfig struct {
	SpreadsheetID string `mapstructure:"spreadsheet-id"`
	FolderID      string `mapstructure:"folder-id"`
}

// TelegramConfig holds notification credentials. An empty token disables
// notifications.
type TelegramConfig struct {
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat-id"`
}

// KitConfig points at the resume kit documents.
type KitConfig struct {
	SeniorPath   string `mapstructure:"senior-path" validate:"omitempty,filepath"`
	DirectorPath string `mapstructure:"director-path" validate:"omitempty,filepath"`
}

// Environment variables bound to config keys.
var envBindings = map[string]string{
	"research.newsapi-key": "NEWSAPI_API_KEY",
	"research.gemini-key":  "GEMINI_API_KEY",
	"telegram.token":       "TELEGRAM_BOT_TOKEN",
	"telegram.chat-id":     "TELEGRAM_CHAT_ID",
	"database-url":         "DATABASE_URL",
}

// BindEnv registers the environment variable overrides on a viper instance.
func BindEnv(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	return nil
}

// Load unmarshals and validates the configuration held by a viper instance.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. Required credentials are checked by the
// commands that use them, not here.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if c.Telegram.Token != "" && c.Telegram.ChatID == 0 {
		return fmt.Errorf("config error: telegram.chat-id is required when telegram.token is set")
	}
	return nil
}
