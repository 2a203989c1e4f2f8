package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TAQYIM_CONFIG is set
//  3. env (prefix TAQYIM_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TAQYIM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: TAQYIM_ADDR, TAQYIM_SEND_TIMEOUT_MS, ...
	// Keys map to the koanf tags on the struct with underscores preserved.
	envProvider := env.Provider("TAQYIM_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "taqyim_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.DefaultLanguage {
	case "ar", "en":
	default:
		return fmt.Errorf("%w: default_language must be ar or en", ErrInvalidConfig)
	}
	if c.SendTimeoutMS <= 0 {
		return fmt.Errorf("%w: send_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.NotifyEnabled && (c.TelegramBotToken == "" || c.TelegramChatID == "") {
		return fmt.Errorf("%w: notify_enabled requires telegram_bot_token and telegram_chat_id", ErrInvalidConfig)
	}
	return nil
}
