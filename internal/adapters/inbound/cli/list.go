package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsfix/tsfix/internal/adapters/outbound/config"
	"github.com/tsfix/tsfix/internal/adapters/outbound/tui"
)

func newListCmd() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "Show the effective fix table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := projectPath(args)
			if err != nil {
				return err
			}

			table, err := config.New().Load(absPath, configPath)
			if err != nil {
				return fmt.Errorf("loading fix table: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, table)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTable(table))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Fix table document (default: <path>/.tsfix.yaml, else built-in table)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the table as JSON")

	return cmd
}
