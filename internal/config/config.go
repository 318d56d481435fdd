package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TelegramConfig enables mirroring notifications to a Telegram chat in
// addition to the VK destination chat.
type TelegramConfig struct {
	Enabled bool   `yaml:"enabled"`
	ChatID  string `yaml:"chat_id"`
}

type Config struct {
	GroupID     int64          `yaml:"group_id"`     // community whose events are relayed
	ChatID      int64          `yaml:"chat_id"`      // destination peer id for notifications
	LinkHost    string         `yaml:"link_host"`    // host used in generated wall links
	LogLevel    string         `yaml:"log_level"`    // zap level string
	MetricsAddr string         `yaml:"metrics_addr"` // empty disables the /metrics listener
	Wait        int            `yaml:"wait"`         // long poll wait, seconds
	Telegram    TelegramConfig `yaml:"telegram"`

	// Tokens come from the environment, not the config file.
	BotToken      string `yaml:"-"`
	UserToken     string `yaml:"-"`
	TelegramToken string `yaml:"-"`
}

// Load reads the YAML config at path, fills tokens from the environment and
// applies defaults. Missing required values are reported as a single error.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.BotToken = os.Getenv("VK_BOT_TOKEN")
	cfg.UserToken = os.Getenv("VK_USER_TOKEN")
	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LinkHost == "" {
		c.LinkHost = "vk.com"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Wait <= 0 {
		c.Wait = 25
	}
}

func (c *Config) validate() error {
	var errs []error
	if c.BotToken == "" {
		errs = append(errs, errors.New("VK_BOT_TOKEN is required"))
	}
	if c.UserToken == "" {
		errs = append(errs, errors.New("VK_USER_TOKEN is required"))
	}
	if c.GroupID == 0 {
		errs = append(errs, errors.New("group_id is required"))
	}
	if c.ChatID == 0 {
		errs = append(errs, errors.New("chat_id is required"))
	}
	if c.Telegram.Enabled {
		if c.TelegramToken == "" {
			errs = append(errs, errors.New("TELEGRAM_BOT_TOKEN is required when telegram is enabled"))
		}
		if c.Telegram.ChatID == "" {
			errs = append(errs, errors.New("telegram.chat_id is required when telegram is enabled"))
		}
	}
	return errors.Join(errs...)
}
