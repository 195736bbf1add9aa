package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

// Default values used when the config file leaves a setting out.
const (
	DefaultThemeName = "blue"
	DefaultRows      = 20
	DefaultWidth     = 120
	DefaultHeight    = 40
)

// Config represents the complete colortable configuration
type Config struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Data       DataConfig       `toml:"data,omitempty"`
	UI         UIConfig         `toml:"ui,omitempty"`
}

// AppearanceConfig holds the starting theme and color overrides
type AppearanceConfig struct {
	Theme     string            `toml:"theme"`
	Overrides map[string]string `toml:"overrides,omitempty"`
}

// DataConfig controls the generated sample rows
type DataConfig struct {
	Rows int    `toml:"rows,omitempty"`
	Seed uint64 `toml:"seed,omitempty"` // 0 picks a random seed
}

// UIConfig holds the viewport size used when no terminal reports one
// (headless replay).
type UIConfig struct {
	Width  int `toml:"width,omitempty"`
	Height int `toml:"height,omitempty"`
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() string {
	if configPath := os.Getenv("COLORTABLE_CONFIG"); configPath != "" {
		return configPath
	}

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, _ := os.UserHomeDir()
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "colortable", "config.toml")
	default:
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, "colortable", "config.toml")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "colortable", "config.toml")
	}
}

// ConfigFileExists returns true if the config file exists on disk
func ConfigFileExists() bool {
	_, err := os.Stat(GetConfigPath())
	return err == nil
}

// GetDefaultConfig returns a config with sensible defaults
func GetDefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			Theme: DefaultThemeName,
		},
		Data: DataConfig{
			Rows: DefaultRows,
		},
		UI: UIConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// LoadConfig loads the configuration from GetConfigPath with fallback to defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFromPath(GetConfigPath())
}

// LoadConfigFromPath loads the configuration at path. A missing file is not
// an error and yields the defaults.
func LoadConfigFromPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from %s: %w", configPath, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings the table cannot be built from.
func (c *Config) Validate() error {
	if c.Data.Rows < 1 {
		return fmt.Errorf("data.rows must be at least 1, got %d", c.Data.Rows)
	}
	if c.UI.Width < 1 || c.UI.Height < 1 {
		return fmt.Errorf("ui size must be positive, got %dx%d", c.UI.Width, c.UI.Height)
	}
	return nil
}

// applyDefaults fills settings the file left out.
func (c *Config) applyDefaults() {
	if c.Appearance.Theme == "" {
		c.Appearance.Theme = DefaultThemeName
	}
	if c.Data.Rows == 0 {
		c.Data.Rows = DefaultRows
	}
	if c.UI.Width == 0 {
		c.UI.Width = DefaultWidth
	}
	if c.UI.Height == 0 {
		c.UI.Height = DefaultHeight
	}
}

// GetConfigPathForHelp returns the config path for display in help text
func GetConfigPathForHelp() string {
	return GetConfigPath()
}
