package mcp

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tsfix/tsfix/internal/adapters/outbound/config"
)

const tableURI = "tsfix://table"

// registerResources registers all tsfix MCP resources on the given server.
func registerResources(s *server.MCPServer, opts Options) {
	s.AddResource(
		mcplib.NewResource(
			tableURI,
			"Fix Table",
			mcplib.WithResourceDescription("Effective fix table as a .tsfix.yaml document"),
			mcplib.WithMIMEType("application/yaml"),
		),
		handleTableResource(opts),
	)
}

func handleTableResource(opts Options) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		table, err := loadTable(opts)
		if err != nil {
			return nil, fmt.Errorf("loading fix table: %w", err)
		}

		data, err := config.Marshal(table)
		if err != nil {
			return nil, fmt.Errorf("marshaling table: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      tableURI,
				MIMEType: "application/yaml",
				Text:     string(data),
			},
		}, nil
	}
}
