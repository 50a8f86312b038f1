package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swagprobe/swagprobe/internal/config"
)

func ValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path> <method>",
		Short: "Check whether a request would be accepted by the matched operation",
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
			query, err := decodeQueryFlag(cmd)
			if err != nil {
				return err
			}

			if !o.ValidateRequest(args[0], args[1], body, query) {
				cmd.Printf("invalid\n")
				// Distinguish "the answer is no" from operational failure.
				cmd.SilenceUsage = true
				return fmt.Errorf("request rejected")
			}
			cmd.Printf("valid\n")
			return nil
		},
	}

	cmd.Flags().String("body", "", "Request body, as JSON or a raw string")
	cmd.Flags().StringToString("query", nil, "Query parameters (key=value)")
	config.BindCommonFlags(cmd)
	return cmd
}

// decodeBodyFlag parses the body flag as JSON when it parses, keeping
// the raw string otherwise. An unset flag means no body at all.
func decodeBodyFlag(cmd *cobra.Command) (any, error) {
	if !cmd.Flags().Changed("body") {
		return nil, nil
	}
	raw, err := cmd.Flags().GetString("body")
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return raw, nil
	}
	return decoded, nil
}

func decodeQueryFlag(cmd *cobra.Command) (map[string]any, error) {
	if !cmd.Flags().Changed("query") {
		return nil, nil
	}
	raw, err := cmd.Flags().GetStringToString("query")
	if err != nil {
		return nil, err
	}

	query := make(map[string]any, len(raw))
	for k, v := range raw {
		query[k] = v
	}
	return query, nil
}
