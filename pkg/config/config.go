/*
Package config manages the TOML config for dinesearch.

The file is created with defaults on first run. A file that fails to decode
as a whole is parsed section by section so one bad value does not throw away
the rest.

	[server]
	max_query_length = 60

	[catalog]
	path = ""
	feed_path = ""
	feed_order = ["mustEats", "superDeals", "recommended", "streetFood", "dessert"]

	[search]
	default_facet = "all"

	[cli]
	show_descriptions = true
	color = true
*/
package config

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/bastiangx/dinesearch/internal/utils"
	"github.com/bastiangx/dinesearch/pkg/feed"
	"github.com/bastiangx/dinesearch/pkg/index"
	"github.com/charmbracelet/log"
)

// AppName names the config directory.
const AppName = "dinesearch"

// Config holds the entire config structure
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Search  SearchConfig  `toml:"search"`
	CLI     CliConfig     `toml:"cli"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	// MaxQueryLength rejects longer queries at the transport. 0 disables it.
	MaxQueryLength int `toml:"max_query_length"`
}

// CatalogConfig points at the restaurant data. Empty paths use the
// embedded seeds.
type CatalogConfig struct {
	Path      string   `toml:"path"`
	FeedPath  string   `toml:"feed_path"`
	FeedOrder []string `toml:"feed_order"`
}

// SearchConfig holds search screen options.
type SearchConfig struct {
	DefaultFacet string `toml:"default_facet"`
}

// CliConfig holds cli and tui display options.
type CliConfig struct {
	ShowDescriptions bool `toml:"show_descriptions"`
	Color            bool `toml:"color"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. $XDG_CONFIG_HOME/dinesearch or ~/.config/dinesearch
// 2. ~/Library/Application Support/dinesearch (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		path := filepath.Join(xdg, AppName)
		if result := utils.CheckDirStatus(path); result.Writable {
			return path, nil
		}
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", AppName)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", AppName)
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/dinesearch/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxQueryLength: 60,
		},
		Catalog: CatalogConfig{
			FeedOrder: slices.Clone(feed.DefaultOrder),
		},
		Search: SearchConfig{
			DefaultFacet: index.FacetAll.String(),
		},
		CLI: CliConfig{
			ShowDescriptions: true,
			Color:            true,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps whatever sections of a broken file still parse
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "max_query_length"); ok {
			config.Server.MaxQueryLength = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "catalog"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Catalog.Path = val
		}
		if val, ok := utils.ExtractString(section, "feed_path"); ok {
			config.Catalog.FeedPath = val
		}
		if val, ok := utils.ExtractStrings(section, "feed_order"); ok {
			config.Catalog.FeedOrder = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "search"); ok {
		if val, ok := utils.ExtractString(section, "default_facet"); ok {
			config.Search.DefaultFacet = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		if val, ok := utils.ExtractBool(section, "show_descriptions"); ok {
			config.CLI.ShowDescriptions = val
		}
		if val, ok := utils.ExtractBool(section, "color"); ok {
			config.CLI.Color = val
		}
	}
	return config, nil
}

// Facet returns the configured starting facet, falling back to all.
func (c *Config) Facet() index.Facet {
	f, err := index.ParseFacet(c.Search.DefaultFacet)
	if err != nil {
		log.Warnf("Invalid default_facet in config: %v. Using %q.", err, index.FacetAll)
		return index.FacetAll
	}
	return f
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
