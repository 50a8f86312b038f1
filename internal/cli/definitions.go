package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swagprobe/swagprobe/internal/config"
)

func DefinitionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "definitions [name...]",
		Short: "Print synthesized examples for named definitions (all when no names given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := buildOracle(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return printJSON(cmd, o.DefinitionExamples())
			}

			out := make(map[string]any, len(args))
			for _, name := range args {
				example, ok := o.DefinitionExample(name)
				if !ok {
					return fmt.Errorf("no example for definition %q", name)
				}
				out[name] = example
			}
			return printJSON(cmd, out)
		},
	}

	config.BindCommonFlags(cmd)
	return cmd
}
