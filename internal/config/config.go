package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cmdwiki/internal/eventbus"
)

const (
	currentVersion     = 1
	defaultCopyResetMs = 2000
	fileName           = "config.toml"
)

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version"`
	CatalogPath string     `toml:"catalog_path"` // empty means the built-in catalog
	UISettings  UISettings `toml:"ui"`
	Log         LogConfig  `toml:"log"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	CopyResetMs      int  `toml:"copy_reset_ms"`
	ShowDescriptions bool `toml:"show_descriptions"`
	HelpInPager      bool `toml:"help_in_pager"`
	AltScreen        bool `toml:"alt_screen"`
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// CopyResetDelay is how long an entry shows as copied
func (c *Config) CopyResetDelay() time.Duration {
	if c == nil || c.UISettings.CopyResetMs <= 0 {
		return defaultCopyResetMs * time.Millisecond
	}
	return time.Duration(c.UISettings.CopyResetMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "cmdwiki", fileName)
}

// NewConfigService creates a config service for path ("" means DefaultPath)
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, falling back to
// defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:        cs.filePath,
			CatalogPath: cfg.CatalogPath,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = currentVersion
	}
	if cfg.UISettings.CopyResetMs <= 0 {
		cfg.UISettings.CopyResetMs = defaultCopyResetMs
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: currentVersion,
		UISettings: UISettings{
			CopyResetMs:      defaultCopyResetMs,
			ShowDescriptions: true,
			HelpInPager:      true,
			AltScreen:        true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
