package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name        string
		config      *Config
		expectError bool
		errorMsg    string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "Valid config with console log format",
			config: &Config{
				LogLevel:  1,
				LogFormat: "console",
			},
		},
		{
			name: "Invalid log level (negative)",
			config: &Config{
				LogLevel:  -1,
				LogFormat: "json",
			},
			expectError: true,
			errorMsg:    "log level must be between 0 and 5",
		},
		{
			name: "Invalid log level (too high)",
			config: &Config{
				LogLevel:  6,
				LogFormat: "json",
			},
			expectError: true,
			errorMsg:    "log level must be between 0 and 5",
		},
		{
			name: "Invalid log format",
			config: &Config{
				LogLevel:  2,
				LogFormat: "xml",
			},
			expectError: true,
			errorMsg:    "log format must be 'json' or 'console'",
		},
		{
			name: "Invalid program id",
			config: &Config{
				LogLevel:   2,
				LogFormat:  "json",
				ProgramIDs: ProgramIDs{Nebula: "not-base58-0OIl"},
			},
			expectError: true,
			errorMsg:    "program id nebula",
		},
		{
			name: "Config with defaults applied",
			config: &Config{
				LogLevel:  2,
				LogFormat: "json",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 4, cfg.BatchParallelism)
				assert.Equal(t, 4, cfg.MaxCallDepth)
				assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", cfg.ProgramIDs.Token)
				assert.NotEmpty(t, cfg.ProgramIDs.Gravity)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateConfig(tc.config)

			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
				return
			}
			require.NoError(t, err)
			if tc.validate != nil {
				tc.validate(t, tc.config)
			}
		})
	}
}

func TestLoadWritesDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)
	require.NoError(t, err)

	def, err := LoadDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, *def, cfg)

	_, err = os.Stat(filepath.Join(home, configSubdir, configFileName))
	require.NoError(t, err)

	keys, err := cfg.ProgramIDs.Keys()
	require.NoError(t, err)
	assert.False(t, keys.Nebula.IsZero())
}

func TestSaveAndLoad(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadDefaultConfig()
	require.NoError(t, err)
	cfg.LogLevel = 0
	cfg.LogFormat = "json"
	cfg.BatchParallelism = 16
	require.NoError(t, Save(cfg, home))

	loaded, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, *cfg, loaded)
}

func TestLoadEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GRAVITY_LOG_LEVEL", "3")
	t.Setenv("GRAVITY_LOG_FORMAT", "json")
	t.Setenv("GRAVITY_PROGRAM_IDS_TOKEN", "11111111111111111111111111111111")

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "11111111111111111111111111111111", cfg.ProgramIDs.Token)
}

func TestLoadInvalidFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, configSubdir), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(home, configSubdir, configFileName), []byte("{invalid"), 0o600))

	_, err := Load(home)
	require.Error(t, err)
}
