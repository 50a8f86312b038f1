package cli

import (
	"github.com/spf13/cobra"

	"github.com/swagprobe/swagprobe/internal/config"
)

func RequestDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-data <path> <method>",
		Short: "Print the synthesized response payload for each declared status code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := buildOracle(cmd)
			if err != nil {
				return err
			}

			body, err := decodeBodyFlag(cmd)
			if err != nil {
				return err
			}

			return printJSON(cmd, o.RequestData(args[0], args[1], body))
		},
	}

	cmd.Flags().String("body", "", "Request body, as JSON or a raw string")
	config.BindCommonFlags(cmd)
	return cmd
}
