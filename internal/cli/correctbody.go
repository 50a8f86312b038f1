package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swagprobe/swagprobe/internal/config"
)

func CorrectBodyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correct-body <path> <method>",
		Short: "Synthesize a request body the matched operation would accept",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := buildOracle(cmd)
			if err != nil {
				return err
			}

			body, ok := o.CorrectRequestBody(args[0], args[1])
			if !ok {
				return fmt.Errorf("no body can be synthesized for %s %s", args[1], args[0])
			}
			return printJSON(cmd, body)
		},
	}

	config.BindCommonFlags(cmd)
	return cmd
}
