// Package config loads and saves fintrack preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Config holds all fintrack configuration.
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Appearance AppearanceConfig `toml:"appearance" yaml:"appearance"`
	Log        LogConfig        `toml:"log" yaml:"log"`
}

// GeneralConfig holds form and export preferences.
type GeneralConfig struct {
	CurrencySymbol string   `toml:"currency_symbol" yaml:"currency_symbol"`
	DateLayout     string   `toml:"date_layout" yaml:"date_layout"` // Go time layout for the default date
	Categories     []string `toml:"categories" yaml:"categories"`
	ExportPath     string   `toml:"export_path" yaml:"export_path"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" yaml:"theme"`
}

// LogConfig controls the file logger. An empty File disables logging.
type LogConfig struct {
	File  string `toml:"file,omitempty" yaml:"file,omitempty"`
	Debug bool   `toml:"debug" yaml:"debug"`
}

// Environment overrides, applied after the file is read.
const (
	EnvTheme    = "FINTRACK_THEME"
	EnvCurrency = "FINTRACK_CURRENCY"
	EnvLogFile  = "FINTRACK_LOG_FILE"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	cats := make([]string, len(model.DefaultCategories))
	copy(cats, model.DefaultCategories)

	return Config{
		General: GeneralConfig{
			CurrencySymbol: "₹",
			DateLayout:     "02/01/2006",
			Categories:     cats,
			ExportPath:     "expenses.csv",
		},
		Appearance: AppearanceConfig{
			Theme: "catppuccin-mocha",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fintrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fintrack")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied in both cases.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	fillDefaults(&cfg)
	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Render encodes cfg as "toml" or "yaml".
func Render(cfg Config, format string) (string, error) {
	switch format {
	case "", "toml":
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
			return "", fmt.Errorf("encoding toml: %w", err)
		}
		return b.String(), nil
	case "yaml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// fillDefaults restores fields a partial config file left empty.
func fillDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.General.CurrencySymbol == "" {
		cfg.General.CurrencySymbol = def.General.CurrencySymbol
	}
	if cfg.General.DateLayout == "" {
		cfg.General.DateLayout = def.General.DateLayout
	}
	if len(cfg.General.Categories) == 0 {
		cfg.General.Categories = def.General.Categories
	}
	if cfg.General.ExportPath == "" {
		cfg.General.ExportPath = def.General.ExportPath
	}
	if cfg.Appearance.Theme == "" {
		cfg.Appearance.Theme = def.Appearance.Theme
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.General.CurrencySymbol = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
}
