// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// InactivePolicy selects how athletes with status "inactive" are displayed.
// The CMS data is inconsistent about this, so the behavior is an explicit
// configuration choice rather than something inferred from records.
type InactivePolicy string

const (
	// InactiveHide removes inactive athletes from the roster entirely.
	InactiveHide InactivePolicy = "hide"
	// InactiveAsActive shows inactive athletes in the active section.
	InactiveAsActive InactivePolicy = "active"
	// InactiveSeparate shows inactive athletes in their own section.
	InactiveSeparate InactivePolicy = "separate"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	BackendURL string `env:"SITE_PB_URL" envDefault:"http://127.0.0.1:8090"`
	BaseURL    string `env:"SITE_BASE_URL" envDefault:"https://tkddzwirzyno.pl"`
	ServerHost string `env:"SITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"SITE_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"SITE_ENV" envDefault:"development"`
	LogLevel   string `env:"SITE_LOG_LEVEL" envDefault:"info"`

	// CacheTTL is the shared-state cache lifetime in seconds. Observed
	// deployments use anything from 60s to 5 minutes.
	CacheTTL int `env:"SITE_CACHE_TTL" envDefault:"60"`

	// InactiveAthletes controls placement of status="inactive" athletes.
	InactiveAthletes InactivePolicy `env:"SITE_INACTIVE_ATHLETES" envDefault:"hide"`

	// HeadCoach, when set, is always listed first on the coaches page
	// regardless of result ordering. A business rule, not data-driven.
	HeadCoach string `env:"SITE_HEAD_COACH"`

	// SMTP settings for the contact-form notification email. Notification
	// sending is disabled when SMTPHost is empty.
	SMTPHost string `env:"SITE_SMTP_HOST"`
	SMTPPort int    `env:"SITE_SMTP_PORT" envDefault:"25"`
	SMTPUser string `env:"SITE_SMTP_USER"`
	SMTPPass string `env:"SITE_SMTP_PASS"`
	SMTPFrom string `env:"SITE_SMTP_FROM" envDefault:"trener@tkddzwirzyno.pl"`
	SMTPTo   string `env:"SITE_SMTP_TO" envDefault:"trener@tkddzwirzyno.pl"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// NotifyEnabled returns true if contact-form email notification is configured.
func (c Config) NotifyEnabled() bool {
	return c.SMTPHost != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("SITE_CACHE_TTL must be positive, got %d", cfg.CacheTTL)
	}

	switch cfg.InactiveAthletes {
	case InactiveHide, InactiveAsActive, InactiveSeparate:
	default:
		return nil, fmt.Errorf("SITE_INACTIVE_ATHLETES must be one of hide|active|separate, got %q",
			cfg.InactiveAthletes)
	}

	return cfg, nil
}
