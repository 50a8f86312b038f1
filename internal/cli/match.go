package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swagprobe/swagprobe/internal/config"
)

func MatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <path> [method]",
		Short: "Resolve a concrete request path to its declared template",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := buildOracle(cmd)
			if err != nil {
				return err
			}

			if len(args) == 2 {
				opSpec, ok := o.OperationSpec(args[0], args[1])
				if !ok {
					return fmt.Errorf("no operation matches %s %s", args[1], args[0])
				}
				cmd.Printf("%s %s\n", opSpec.Method, opSpec.Path)
				return nil
			}

			pathSpec, ok := o.MatchPath(args[0])
			if !ok {
				return fmt.Errorf("no path template matches %s", args[0])
			}
			cmd.Printf("%s\n", pathSpec.Template)
			return nil
		},
	}

	config.BindCommonFlags(cmd)
	return cmd
}
