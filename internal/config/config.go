package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SHOWFOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SHOWFOLIO_PORT -> port, etc.
	if err := k.Load(env.Provider("SHOWFOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SHOWFOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validThemes is the set of recognized theme values.
var validThemes = map[Theme]bool{
	ThemeLight: true,
	ThemeDark:  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Theme != "" && !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be light or dark", c.Theme)
	}
	if c.CacheTTL != "" {
		if _, err := time.ParseDuration(c.CacheTTL); err != nil {
			return fmt.Errorf("invalid cache_ttl %q: %w", c.CacheTTL, err)
		}
	}
	return nil
}

// ProjectCacheTTL returns the parsed cache TTL, defaulting to one hour.
func (c *Config) ProjectCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return time.Hour
	}
	return d
}
