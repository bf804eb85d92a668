package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsfix/tsfix/internal/log"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		verbose   int
		logFormat string
	)

	cmd := &cobra.Command{
		Use:           "tsfix",
		Short:         "Apply curated text fixes to front-end sources",
		Long:          "tsfix applies a table of textual patches (unused import removal, bracket notation, optional chaining) to TypeScript sources, rewriting each file only when a fix matched.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logFormat != "text" && logFormat != "json" {
				return fmt.Errorf("unknown log format %q (valid: text, json)", logFormat)
			}
			log.InitWithOutput(verbose, logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newApplyCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
