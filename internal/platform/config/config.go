package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

type Config struct {
	Environment    string `env:"APP_ENV" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"warn"`
	Locale         string `env:"PAYROLL_LOCALE" envDefault:"es-NI"`
	CurrencySymbol string `env:"PAYROLL_CURRENCY_SYMBOL" envDefault:"C$"`
	ClearLines     int    `env:"CONSOLE_CLEAR_LINES" envDefault:"50"`
	PauseEnabled   bool   `env:"CONSOLE_PAUSE" envDefault:"true"`
}

func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LanguageTag parses Locale. Call Validate first.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

func (c Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("PAYROLL_LOCALE %q is not a valid BCP 47 tag: %w", c.Locale, err)
	}
	if strings.TrimSpace(c.CurrencySymbol) == "" {
		return fmt.Errorf("PAYROLL_CURRENCY_SYMBOL must not be empty")
	}
	if c.ClearLines < 0 {
		return fmt.Errorf("CONSOLE_CLEAR_LINES must not be negative")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	return nil
}
