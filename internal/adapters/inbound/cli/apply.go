package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsfix/tsfix/internal/adapters/outbound/config"
	"github.com/tsfix/tsfix/internal/adapters/outbound/diff"
	"github.com/tsfix/tsfix/internal/adapters/outbound/gitinfo"
	"github.com/tsfix/tsfix/internal/adapters/outbound/tui"
	"github.com/tsfix/tsfix/internal/adapters/outbound/workspace"
	"github.com/tsfix/tsfix/internal/application"
	"github.com/tsfix/tsfix/internal/domain"
	"github.com/tsfix/tsfix/internal/log"
)

func newApplyCmd() *cobra.Command {
	var (
		srcDir     string
		configPath string
		dryRun     bool
		showDiff   bool
		jsonOutput bool
		quiet      bool
		only       []string
	)

	cmd := &cobra.Command{
		Use:   "apply [path]",
		Short: "Apply the fix table to the project's sources",
		Long:  "Load the fix table (.tsfix.yaml or the built-in table), apply each file's fixes in order and rewrite only the files where at least one fix matched. Missing files are reported and skipped.",
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

			// Keep stdout pure JSON when requested.
			var progress io.Writer = cmd.OutOrStdout()
			if jsonOutput {
				progress = nil
			}

			svc := application.NewFixService(workspace.New(), gitinfo.New(), diff.New(), progress)
			report, err := svc.ApplyFixes(sourceDir(absPath, srcDir), table, domain.FixOptions{
				DryRun: dryRun,
				Only:   only,
			})
			if err != nil {
				return fmt.Errorf("apply failed: %w", err)
			}

			for _, p := range report.DirtyTargets {
				log.Warn("target has uncommitted changes", "file", p)
			}

			switch {
			case jsonOutput:
				return renderJSON(cmd, report)
			case quiet:
				return nil
			default:
				fmt.Fprint(cmd.OutOrStdout(), "\n"+tui.RenderReport(report, showDiff))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&srcDir, "src", "src", "Source directory the table's paths are relative to")
	cmd.Flags().StringVar(&configPath, "config", "", "Fix table document (default: <path>/.tsfix.yaml, else built-in table)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without writing files")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show unified diffs in the summary (with --dry-run)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run report as JSON")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print progress lines only, no summary")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Restrict the run to these table paths (repeatable)")

	return cmd
}
