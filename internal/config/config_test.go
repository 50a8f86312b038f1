package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config",
			config:  Config{Spec: "api.yaml", LogLevel: "info"},
			wantErr: false,
		},
		{
			name:    "empty log level is valid",
			config:  Config{Spec: "api.yaml"},
			wantErr: false,
		},
		{
			name:        "missing spec",
			config:      Config{LogLevel: "info"},
			wantErr:     true,
			errContains: "spec file is required",
		},
		{
			name:        "invalid log level",
			config:      Config{Spec: "api.yaml", LogLevel: "loud"},
			wantErr:     true,
			errContains: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					require.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: api.yaml
use-examples: false
log-level: debug
vars:
  host: example.com
`
	configPath := filepath.Join(tmpDir, "swagprobe.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	// Change to temp dir so swagprobe.yaml is found
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "api.yaml", cfg.Spec)
	require.False(t, cfg.UseExamples)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, map[string]string{"host": "example.com"}, cfg.Vars)
}

func TestLoadDefaults(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	cmd.PersistentFlags().Set("spec", "api.yaml")

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.True(t, cfg.UseExamples)
	require.False(t, cfg.SkipValidation)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: api.yaml
log-level: info
`
	configPath := filepath.Join(tmpDir, "swagprobe.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)

	cmd.PersistentFlags().Set("log-level", "error")
	cmd.PersistentFlags().Set("no-examples", "true")

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "error", cfg.LogLevel)
	require.False(t, cfg.UseExamples)
}

func TestLoadWithExplicitConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
spec: custom.yaml
skip-validation: true
`
	configPath := filepath.Join(tmpDir, "custom-config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cmd := &cobra.Command{}
	BindCommonFlags(cmd)
	cmd.PersistentFlags().Set("config", configPath)

	cfg, err := Load(cmd)
	require.NoError(t, err)

	require.Equal(t, "custom.yaml", cfg.Spec)
	require.True(t, cfg.SkipValidation)
}

func TestBuildFlagsMap(t *testing.T) {
	cmd := &cobra.Command{}
	BindCommonFlags(cmd)

	cmd.PersistentFlags().Set("spec", "test.yaml")
	cmd.PersistentFlags().Set("no-examples", "true")
	cmd.PersistentFlags().Set("log-level", "debug")

	m := buildFlagsMap(cmd)

	require.Equal(t, "test.yaml", m["spec"])
	require.Equal(t, false, m["use-examples"])
	require.Equal(t, "debug", m["log-level"])
}

func TestTemplateVars(t *testing.T) {
	cfg := &Config{Vars: map[string]string{"host": "example.com"}}
	require.Equal(t, map[string]any{"host": "example.com"}, cfg.TemplateVars())

	empty := &Config{}
	require.Nil(t, empty.TemplateVars())
}
