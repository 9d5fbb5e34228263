package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"linkctl/pkg/errors"
	"linkctl/pkg/link"

	"gopkg.in/yaml.v3"
)

// Link is one copy target: a destination URL and the label rendered inside
// the styled button.
type Link struct {
	Name  string `yaml:"name,omitempty"`
	URL   string `yaml:"url"`
	Label string `yaml:"label,omitempty"`
}

// Config holds the default link, optional named links, and the history
// switch. The zero value is usable: defaults apply to everything.
type Config struct {
	Link    Link   `yaml:"link,omitempty"`
	Links   []Link `yaml:"links,omitempty"`
	History *bool  `yaml:"history,omitempty"`
}

// Load reads the config file if present and applies environment overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "linkctl", "config.yaml"), nil
}

// Save writes the configuration to the config file, creating the directory
// if needed.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

// HistoryEnabled reports whether copies should be recorded. History is on
// unless disabled in the file or via LINKCTL_HISTORY.
func (c *Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// Resolve maps a command-line target to a Link. An empty target yields the
// default link; anything with a scheme separator is treated as a URL; the
// rest is looked up among the named links.
func (c *Config) Resolve(target string) (Link, error) {
	if target == "" {
		return c.Link, nil
	}

	if strings.Contains(target, "://") {
		return Link{URL: target, Label: c.Link.Label}, nil
	}

	for _, l := range c.Links {
		if l.Name == target {
			return l, nil
		}
	}

	return Link{}, errors.LinkNotFoundError(target, c.LinkNames())
}

// LinkNames returns the names of all configured links.
func (c *Config) LinkNames() []string {
	names := make([]string, 0, len(c.Links))
	for _, l := range c.Links {
		names = append(names, l.Name)
	}
	return names
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)
	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path.
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// File doesn't exist, that's okay - defaults and env vars apply.
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("LINKCTL_URL"); v != "" {
		cfg.Link.URL = v
	}
	if v := os.Getenv("LINKCTL_LABEL"); v != "" {
		cfg.Link.Label = v
	}
	if v := os.Getenv("LINKCTL_HISTORY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.History = &enabled
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Link.URL == "" {
		cfg.Link.URL = link.DefaultURL
	}
	if cfg.Link.Label == "" {
		cfg.Link.Label = link.DefaultLabel
	}
}

func validateConfig(cfg *Config) error {
	seen := make(map[string]bool)
	for _, l := range cfg.Links {
		if l.Name == "" {
			return errors.ConfigError("named links must have a name")
		}
		if l.URL == "" {
			return errors.ConfigError(fmt.Sprintf("link '%s' has no url", l.Name))
		}
		if seen[l.Name] {
			return errors.ConfigError(fmt.Sprintf("duplicate link name '%s'", l.Name))
		}
		seen[l.Name] = true
	}
	return nil
}
