package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// Options locates the project and fix table the server operates on.
type Options struct {
	ProjectPath string // project root; .tsfix.yaml is looked up here
	SrcDir      string // fix table paths are relative to ProjectPath/SrcDir
	ConfigPath  string // explicit fix table document, overrides .tsfix.yaml
}

// NewTsfixMCPServer creates an MCP server with the tsfix tools and
// resources registered.
func NewTsfixMCPServer(opts Options) *server.MCPServer {
	if opts.ProjectPath == "" {
		opts.ProjectPath = "."
	}
	if opts.SrcDir == "" {
		opts.SrcDir = "src"
	}

	s := server.NewMCPServer(
		"tsfix",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, opts)
	registerResources(s, opts)

	return s
}
