package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "swagprobe",
		Short:   "Swagprobe - Swagger 2.0 example synthesis and request validation",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		DefinitionsCommand(),
		OperationsCommand(),
		MatchCommand(),
		ValidateCommand(),
		RequestDataCommand(),
		CorrectBodyCommand(),
	)

	return root
}
