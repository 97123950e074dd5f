/*
Package config manages kotoba's TOML configuration.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct file access
for runtime changes.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Zubayear/kotoba/internal/logging"
)

var log = logging.Default("config")

// Config holds kotoba's entire configuration structure.
type Config struct {
	Search SearchConfig `toml:"search"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// SearchConfig holds cost-model values matching the compile-time constants
// in search/costs.go. cmd/kotoba loads and logs them, but the search package
// does not read them: it always uses its own constants.
type SearchConfig struct {
	MaxNumChanges   int     `toml:"max_num_changes"`
	MaxCostScale    float64 `toml:"max_cost_scale"`
	FirstLetterBias int     `toml:"first_letter_bias"`
}

// DictConfig locates the dictionary files a Root is built from.
type DictConfig struct {
	WordsPath     string `toml:"words_path"`
	ForbiddenPath string `toml:"forbidden_path"`
	CompoundChar  string `toml:"compound_char"`
	ForbiddenChar string `toml:"forbidden_char"`
	FoldChar      string `toml:"fold_char"`
}

// CliConfig holds cmd/kotoba's default flag values.
type CliConfig struct {
	DefaultNumSuggestions int    `toml:"default_num_suggestions"`
	DefaultIgnoreCase     bool   `toml:"default_ignore_case"`
	DefaultIncludeTies    bool   `toml:"default_include_ties"`
	DefaultOutputFormat   string `toml:"default_output_format"`
}

// DefaultConfig returns a Config with kotoba's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxNumChanges:   3,
			MaxCostScale:    0.515,
			FirstLetterBias: 25,
		},
		Dict: DictConfig{
			WordsPath:     "words.txt",
			ForbiddenPath: "",
			CompoundChar:  "+",
			ForbiddenChar: "!",
			FoldChar:      "~",
		},
		CLI: CliConfig{
			DefaultNumSuggestions: 10,
			DefaultIgnoreCase:     false,
			DefaultIncludeTies:    false,
			DefaultOutputFormat:   "text",
		},
	}
}

// InitConfig loads config from file or creates one with defaults if
// configPath does not exist yet.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("created default config file at: ( %s )", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads Config from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig writes cfg to a TOML file at configPath.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(cfg)
}
