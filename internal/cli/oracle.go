package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/swagprobe/swagprobe/internal/config"
	"github.com/swagprobe/swagprobe/internal/loader"
	"github.com/swagprobe/swagprobe/internal/oracle"
)

// buildOracle runs the shared startup sequence: config, spec load,
// oracle construction.
func buildOracle(cmd *cobra.Command) (*oracle.Oracle, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		return nil, err
	}

	result, err := loader.Load(cfg.Spec, loader.Options{
		Vars:           cfg.TemplateVars(),
		SkipValidation: cfg.SkipValidation,
	})
	if err != nil {
		return nil, err
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()

	return oracle.New(result.Specification, &oracle.Options{
		UseExamples: cfg.UseExamples,
		Logger:      log,
	}), nil
}

func printJSON(cmd *cobra.Command, value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	cmd.Printf("%s\n", out)
	return nil
}
