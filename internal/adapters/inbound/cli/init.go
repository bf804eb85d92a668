package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsfix/tsfix/internal/adapters/outbound/config"
	"github.com/tsfix/tsfix/internal/domain"
)

const configHeader = `# tsfix fix table.
# Paths are relative to the source directory (apply --src, default "src").
# Kinds: remove_unused_import (name), bracket_notation (object, property),
#        optional_chaining (expression, property), regex_replace (pattern, replacement).
`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .tsfix.yaml from the built-in fix table",
		Long:  "Create a .tsfix.yaml holding the built-in fix table so it can be edited instead of recompiled.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := projectPath(args)
			if err != nil {
				return err
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			data, err := config.Marshal(domain.DefaultTable())
			if err != nil {
				return fmt.Errorf("rendering config: %w", err)
			}

			if err := os.WriteFile(dest, append([]byte(configHeader), data...), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .tsfix.yaml")

	return cmd
}
