package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// projectPath resolves the optional [path] argument to an absolute path.
func projectPath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absPath, nil
}

// sourceDir joins srcDir onto the project root unless it is already absolute.
func sourceDir(project, srcDir string) string {
	if filepath.IsAbs(srcDir) {
		return srcDir
	}
	return filepath.Join(project, srcDir)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
