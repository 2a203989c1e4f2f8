// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() returning defaults and Load(ctx) layering file/env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// DefaultLanguage is the language a fresh session starts in: ar or en.
	DefaultLanguage string `koanf:"default_language"`

	// CatalogPath points at an external YAML rubric catalog. Empty means
	// the built-in catalog.
	CatalogPath string `koanf:"catalog_path"`

	// InitialDepartment preselects a department at startup (demo bootstrap).
	// Empty means no preselection.
	InitialDepartment string `koanf:"initial_department"`

	// NotifyEnabled switches the outbound notification channel on. When
	// false, submits format the message but discard it.
	NotifyEnabled bool `koanf:"notify_enabled"`

	// TelegramBotToken and TelegramChatID configure the bot API channel.
	TelegramBotToken string `koanf:"telegram_bot_token"`
	TelegramChatID   string `koanf:"telegram_chat_id"`

	// SendTimeoutMS bounds a single outbound notification attempt.
	SendTimeoutMS int `koanf:"send_timeout_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":8090",
		DefaultLanguage:   "ar",
		CatalogPath:       "",
		InitialDepartment: "sales",
		NotifyEnabled:     false,
		SendTimeoutMS:     10_000,
	}
}
