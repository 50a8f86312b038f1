package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/swagprobe/swagprobe/internal/config"
	"github.com/swagprobe/swagprobe/internal/oracle"
)

func OperationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List operations by id, including generated ids for anonymous operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := buildOracle(cmd)
			if err != nil {
				return err
			}

			printIndex(cmd, "Operations", o.Operations())
			printIndex(cmd, "Generated", o.GeneratedOperations())
			return nil
		},
	}

	config.BindCommonFlags(cmd)
	return cmd
}

func printIndex(cmd *cobra.Command, header string, refs map[string]oracle.OperationRef) {
	if len(refs) == 0 {
		return
	}
	ids := make([]string, 0, len(refs))
	for id := range refs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cmd.Printf("%s:\n", header)
	for _, id := range ids {
		ref := refs[id]
		cmd.Printf("  %s: %s %s", id, ref.Method, ref.Path)
		if ref.Tag != "" {
			cmd.Printf(" [%s]", ref.Tag)
		}
		cmd.Printf("\n")
	}
}
