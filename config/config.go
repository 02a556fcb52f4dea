package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configSubdir   = "config"
	configFileName = "gravity_config.json"

	// EnvPrefix prefixes environment overrides, e.g. GRAVITY_LOG_LEVEL or
	// GRAVITY_PROGRAM_IDS_NEBULA.
	EnvPrefix = "GRAVITY"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

//go:embed default_config.json
var defaultConfigJSON []byte

func validateConfig(cfg *Config) error {
	// Validate log level
	if cfg.LogLevel < 0 || cfg.LogLevel > 5 {
		return fmt.Errorf("log level must be between 0 and 5")
	}

	// Validate log format
	if cfg.LogFormat != LogFormatJSON && cfg.LogFormat != LogFormatConsole {
		return fmt.Errorf("log format must be 'json' or 'console'")
	}

	// Set defaults for runtime config
	if cfg.BatchParallelism == 0 {
		cfg.BatchParallelism = 4
	}
	if cfg.MaxCallDepth == 0 {
		cfg.MaxCallDepth = 4
	}
	if cfg.BatchParallelism < 0 || cfg.MaxCallDepth < 0 {
		return fmt.Errorf("batch parallelism and max call depth must be positive")
	}

	// Fill missing program ids from the embedded defaults
	defaultCfg, err := LoadDefaultConfig()
	if err != nil {
		return err
	}
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&cfg.ProgramIDs.Gravity, defaultCfg.ProgramIDs.Gravity)
	fill(&cfg.ProgramIDs.Nebula, defaultCfg.ProgramIDs.Nebula)
	fill(&cfg.ProgramIDs.IBPort, defaultCfg.ProgramIDs.IBPort)
	fill(&cfg.ProgramIDs.LUPort, defaultCfg.ProgramIDs.LUPort)
	fill(&cfg.ProgramIDs.Token, defaultCfg.ProgramIDs.Token)

	if _, err := cfg.ProgramIDs.Keys(); err != nil {
		return err
	}
	return nil
}

// Save writes the given config to <basePath>/config/gravity_config.json.
func Save(cfg *Config, basePath string) error {
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configDir := filepath.Join(basePath, configSubdir)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, configFileName)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads the config from <basePath>/config/gravity_config.json, writing the
// defaults first if the file does not exist. GRAVITY_* environment variables
// override file values.
func Load(basePath string) (Config, error) {
	configFile := filepath.Join(basePath, configSubdir, configFileName)
	if _, err := os.Stat(configFile); errors.Is(err, os.ErrNotExist) {
		defaultCfg, err := LoadDefaultConfig()
		if err != nil {
			return Config{}, err
		}
		if err := Save(defaultCfg, basePath); err != nil {
			return Config{}, err
		}
	}

	v := viper.New()
	v.SetConfigFile(filepath.Clean(configFile))
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDefaultConfig loads the default configuration from embedded JSON
func LoadDefaultConfig() (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(defaultConfigJSON, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	return &cfg, nil
}
