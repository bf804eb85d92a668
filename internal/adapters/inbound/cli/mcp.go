package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/tsfix/tsfix/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the tsfix MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var opts mcpadapter.Options

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start tsfix MCP server (stdio)",
		Long:  "Start the tsfix MCP server using stdio transport, so AI coding assistants can list and apply the fix table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewTsfixMCPServer(opts)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&opts.ProjectPath, "path", "", "Project path (defaults to current working directory)")
	cmd.Flags().StringVar(&opts.SrcDir, "src", "src", "Source directory the table's paths are relative to")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Fix table document")

	return cmd
}
