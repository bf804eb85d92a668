package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tsfix/tsfix/internal/adapters/outbound/config"
	"github.com/tsfix/tsfix/internal/adapters/outbound/diff"
	"github.com/tsfix/tsfix/internal/adapters/outbound/gitinfo"
	"github.com/tsfix/tsfix/internal/adapters/outbound/workspace"
	"github.com/tsfix/tsfix/internal/application"
	"github.com/tsfix/tsfix/internal/domain"
)

// registerTools registers all tsfix MCP tools on the given server.
func registerTools(s *server.MCPServer, opts Options) {
	s.AddTool(
		mcplib.NewTool("tsfix_apply",
			mcplib.WithDescription("Apply the fix table to the project's source files and return the run report as JSON"),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report and diff the changes without writing files")),
			mcplib.WithString("only", mcplib.Description("Comma-separated table paths to restrict the run to")),
		),
		handleApply(opts),
	)

	s.AddTool(
		mcplib.NewTool("tsfix_list_fixes",
			mcplib.WithDescription("Returns the effective fix table as JSON"),
		),
		handleListFixes(opts),
	)
}

func loadTable(opts Options) (domain.FixTable, error) {
	return config.New().Load(opts.ProjectPath, opts.ConfigPath)
}

func handleApply(opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		table, err := loadTable(opts)
		if err != nil {
			return errorResult(fmt.Sprintf("loading fix table: %v", err)), nil
		}

		dryRun, _ := request.GetArguments()["dry_run"].(bool)
		onlyStr, _ := request.GetArguments()["only"].(string)

		// Progress lines are dropped: stdout carries the MCP protocol.
		svc := application.NewFixService(workspace.New(), gitinfo.New(), diff.New(), nil)
		report, err := svc.ApplyFixes(
			filepath.Join(opts.ProjectPath, opts.SrcDir),
			table,
			domain.FixOptions{DryRun: dryRun, Only: splitCSV(onlyStr)},
		)
		if err != nil {
			return errorResult(fmt.Sprintf("apply failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleListFixes(opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		table, err := loadTable(opts)
		if err != nil {
			return errorResult(fmt.Sprintf("loading fix table: %v", err)), nil
		}
		return jsonResult(table)
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
