// Package config loads iconkit settings from an optional .env file and the environment.
package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds the paths and options shared by both commands
type Config struct {
	SiteDir   string `env:"ICONKIT_SITE_DIR" envDefault:"orca-federal-website"`
	IconDir   string `env:"ICONKIT_ICON_DIR" envDefault:"orca-federal-website/assets/images/icons"`
	CyberGrid string `env:"ICONKIT_CYBER_GRID" envDefault:"attached_assets/generated_images/Glassy_cybersecurity_category_icons_76d2798c.png"`
	NavGrid   string `env:"ICONKIT_NAV_GRID" envDefault:"attached_assets/generated_images/Glassy_navigation_category_icons_10b28a46.png"`
	LogLevel  string `env:"ICONKIT_LOG_LEVEL" envDefault:"info"`
	Ledger    string `env:"ICONKIT_LEDGER"` // empty disables the run ledger
}

// Load reads .env (if present) and parses the environment into a Config
func Load() (Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment without touching .env
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level returns the configured log level, falling back to info
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SetSiteDir moves the site root to dir. An icon directory that lived under
// the old root keeps its relative position under the new one.
func (c *Config) SetSiteDir(dir string) {
	if rel, err := filepath.Rel(c.SiteDir, c.IconDir); err == nil {
		slash := filepath.ToSlash(rel)
		if slash != ".." && !strings.HasPrefix(slash, "../") {
			c.IconDir = filepath.Join(dir, rel)
		}
	}
	c.SiteDir = dir
}

// IconURLDir returns the icon directory relative to the site root in URL
// form, with a trailing slash. Example: "assets/images/icons/".
func (c Config) IconURLDir() (string, error) {
	rel, err := filepath.Rel(c.SiteDir, c.IconDir)
	if err != nil {
		return "", fmt.Errorf("icon dir %q is not under site dir %q: %w", c.IconDir, c.SiteDir, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("icon dir %q is not under site dir %q", c.IconDir, c.SiteDir)
	}
	if rel == "." {
		return "", nil
	}
	return path.Clean(rel) + "/", nil
}
