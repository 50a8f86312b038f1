package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec           string            `koanf:"spec"`
	UseExamples    bool              `koanf:"use-examples"`
	SkipValidation bool              `koanf:"skip-validation"`
	Vars           map[string]string `koanf:"vars"`
	LogLevel       string            `koanf:"log-level"`
}

// BindCommonFlags binds the flags shared by every subcommand
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: swagprobe.yaml)")
	flags.StringP("spec", "s", "", "Swagger 2.0 spec file path")
	flags.Bool("no-examples", false, "Ignore literal example values when synthesizing")
	flags.Bool("skip-validation", false, "Skip structural validation of the document")
	flags.StringToString("var", nil, "Template variables for spec rendering (key=value)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	// Defaults first, so file and flags can override them.
	defaults := map[string]any{
		"use-examples": true,
		"log-level":    "warn",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("swagprobe.yaml"); err == nil {
			configFile = "swagprobe.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	getStringToString := func(name string) map[string]string {
		if v, err := cmd.Flags().GetStringToString(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringToString(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if flagChanged("no-examples") {
		m["use-examples"] = !getBool("no-examples")
	}
	if flagChanged("skip-validation") {
		m["skip-validation"] = getBool("skip-validation")
	}
	if v := getStringToString("var"); len(v) > 0 {
		m["vars"] = v
	}
	if v := getString("log-level"); v != "" {
		m["log-level"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}

	validLevels := []string{"", "debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// TemplateVars widens the string-typed vars map for template rendering
func (c *Config) TemplateVars() map[string]any {
	if len(c.Vars) == 0 {
		return nil
	}
	vars := make(map[string]any, len(c.Vars))
	for k, v := range c.Vars {
		vars[k] = v
	}
	return vars
}
